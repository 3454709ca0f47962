package backendhttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderSnapshotDTO is the wire representation of an assigned order.
type orderSnapshotDTO struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`

	Customer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"customer"`

	Restaurant struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"restaurant"`

	DeliveryAddress string `json:"delivery_address"`

	Items []struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	} `json:"items"`

	Pricing struct {
		Subtotal    decimal.Decimal `json:"subtotal"`
		DeliveryFee decimal.Decimal `json:"delivery_fee"`
		Total       decimal.Decimal `json:"total"`
	} `json:"pricing"`

	PaymentMethod string `json:"payment_method"`

	Pickup geoPointDTO `json:"pickup"`
	Drop   geoPointDTO `json:"drop"`

	CreatedAt time.Time `json:"created_at"`
	Version   int64     `json:"version"`
}

type geoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (d orderSnapshotDTO) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewContact(d.Customer.Name, d.Customer.Phone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(d.Items))
	for _, itemDTO := range d.Items {
		itemID, itemErr := kernel.UUIDFromString(itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(itemID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(d.Pricing.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(d.Pricing.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(d.Pricing.Total)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(subtotal, deliveryFee, total)
	if err != nil {
		return nil, err
	}

	payment, err := order.PaymentMethodFromString(d.PaymentMethod)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(d.Pickup.Lat, d.Pickup.Lng)
	if err != nil {
		return nil, err
	}
	drop, err := kernel.NewGeoPoint(d.Drop.Lat, d.Drop.Lng)
	if err != nil {
		return nil, err
	}

	version := d.Version
	if version == 0 {
		version = 1
	}

	return order.RestoreOrder(
		id, d.Number, status, customer,
		d.Restaurant.Name, d.Restaurant.Address, d.DeliveryAddress,
		items, pricing, payment, pickup, drop,
		d.CreatedAt, nil, nil, nil, "", nil, version,
	)
}

// FetchAssignedOrders retrieves orders newly assigned to the partner.
func (c *Client) FetchAssignedOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []orderSnapshotDTO
	if err := c.call(ctx, "fetch orders", http.MethodGet, "/v1/orders/assigned", true, nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("malformed order snapshot %s: %w", dto.Number, err)
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// ConfirmAccept reports that the partner accepted the order.
func (c *Client) ConfirmAccept(ctx context.Context, orderID kernel.UUID) error {
	path := fmt.Sprintf("/v1/orders/%s/accept", orderID)
	return c.call(ctx, "accept", http.MethodPost, path, true, nil, nil)
}

// ConfirmReject reports that the partner rejected the order.
func (c *Client) ConfirmReject(ctx context.Context, orderID kernel.UUID, reason string) error {
	path := fmt.Sprintf("/v1/orders/%s/reject", orderID)
	body := map[string]string{"reason": reason}
	return c.call(ctx, "reject", http.MethodPost, path, true, body, nil)
}

// ConfirmStatus reports a lifecycle advance.
func (c *Client) ConfirmStatus(ctx context.Context, orderID kernel.UUID, status order.Status, location *kernel.GeoPoint) error {
	path := fmt.Sprintf("/v1/orders/%s/status", orderID)

	body := map[string]any{"status": status.String()}
	if location != nil {
		body["location"] = geoPointDTO{
			Lat: location.Latitude(),
			Lng: location.Longitude(),
		}
	}

	return c.call(ctx, "status update", http.MethodPost, path, true, body, nil)
}
