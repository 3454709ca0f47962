// Package orderrepo persists order aggregates. It maps the aggregate to an
// orders row plus one order_items row per line item and reconstructs the
// aggregate through RestoreOrder on the way back.
package orderrepo

import (
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number            string    `gorm:"uniqueIndex"`
	Status            string    `gorm:"index"`
	CustomerName      string
	CustomerPhone     string
	RestaurantName    string
	RestaurantAddress string
	DeliveryAddress   string
	Items             []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal          decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee       decimal.Decimal `gorm:"type:numeric"`
	Total             decimal.Decimal `gorm:"type:numeric"`
	PaymentMethod     string
	PickupLat         float64
	PickupLon         float64
	DropLat           float64
	DropLon           float64
	CreatedAt         time.Time `gorm:"index"`
	AcceptedAt        *time.Time
	PickedAt          *time.Time
	DeliveredAt       *time.Time
	CancelReason      string
	LastLat           *float64
	LastLon           *float64
	Version           int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line item.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	var lastLat, lastLon *float64
	if loc := aggregate.LastLocation(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		lastLat, lastLon = &lat, &lon
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number(),
		Status:            aggregate.Status().String(),
		CustomerName:      aggregate.Customer().Name(),
		CustomerPhone:     aggregate.Customer().Phone(),
		RestaurantName:    aggregate.RestaurantName(),
		RestaurantAddress: aggregate.RestaurantAddress(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		Items:             items,
		Subtotal:          aggregate.Pricing().Subtotal().Decimal(),
		DeliveryFee:       aggregate.Pricing().DeliveryFee().Decimal(),
		Total:             aggregate.Pricing().Total().Decimal(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
		PickupLat:         aggregate.Pickup().Latitude(),
		PickupLon:         aggregate.Pickup().Longitude(),
		DropLat:           aggregate.Drop().Latitude(),
		DropLon:           aggregate.Drop().Longitude(),
		CreatedAt:         aggregate.CreatedAt(),
		AcceptedAt:        aggregate.AcceptedAt(),
		PickedAt:          aggregate.PickedAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		CancelReason:      aggregate.CancelReason(),
		LastLat:           lastLat,
		LastLon:           lastLon,
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewContact(dto.CustomerName, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(subtotal, deliveryFee, total)
	if err != nil {
		return nil, err
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLon)
	if err != nil {
		return nil, err
	}
	drop, err := kernel.NewGeoPoint(dto.DropLat, dto.DropLon)
	if err != nil {
		return nil, err
	}

	var lastLocation *kernel.GeoPoint
	if dto.LastLat != nil && dto.LastLon != nil {
		loc, locErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLon)
		if locErr != nil {
			return nil, locErr
		}
		lastLocation = &loc
	}

	return order.RestoreOrder(
		id, dto.Number, status, customer,
		dto.RestaurantName, dto.RestaurantAddress, dto.DeliveryAddress,
		items, pricing, payment, pickup, drop,
		dto.CreatedAt, dto.AcceptedAt, dto.PickedAt, dto.DeliveredAt,
		dto.CancelReason, lastLocation, dto.Version,
	)
}
