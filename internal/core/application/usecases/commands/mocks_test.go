package commands_test

import (
	"context"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetHistory(
	ctx context.Context, filter ports.OrderHistoryFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDeliveredSince(ctx context.Context, since time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Add(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) Get(ctx context.Context) (*wallet.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, tx wallet.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) Get(ctx context.Context, id kernel.UUID) (wallet.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(wallet.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetAll(ctx context.Context, filter ports.LedgerFilter) ([]wallet.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallet.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ExistsForOrder(
	ctx context.Context, orderID kernel.UUID, txType wallet.Type,
) (bool, error) {
	args := m.Called(ctx, orderID, txType)
	return args.Bool(0), args.Error(1)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) Add(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetAll(ctx context.Context) ([]*ticket.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) AddProfile(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAccountRepository) GetProfile(ctx context.Context) (*account.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockAccountRepository) AddDocument(ctx context.Context, d *account.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateDocument(ctx context.Context, d *account.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAccountRepository) GetDocuments(ctx context.Context) ([]*account.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Document), args.Error(1)
}

func (m *MockAccountRepository) AddRating(ctx context.Context, r account.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAccountRepository) GetRatingForOrder(
	ctx context.Context, orderID kernel.UUID, source account.RatingSource,
) (account.Rating, error) {
	args := m.Called(ctx, orderID, source)
	return args.Get(0).(account.Rating), args.Error(1)
}

type MockBackendGateway struct{ mock.Mock }

func (m *MockBackendGateway) Login(ctx context.Context, credentials ports.Credentials) (ports.Session, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockBackendGateway) SendOTP(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockBackendGateway) LoginWithOTP(ctx context.Context, phone, code string) (ports.Session, error) {
	args := m.Called(ctx, phone, code)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockBackendGateway) RefreshSession(ctx context.Context, refreshToken string) (ports.Session, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockBackendGateway) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackendGateway) FetchAssignedOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockBackendGateway) ConfirmAccept(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockBackendGateway) ConfirmReject(ctx context.Context, orderID kernel.UUID, reason string) error {
	args := m.Called(ctx, orderID, reason)
	return args.Error(0)
}

func (m *MockBackendGateway) ConfirmStatus(
	ctx context.Context, orderID kernel.UUID, status order.Status, location *kernel.GeoPoint,
) error {
	args := m.Called(ctx, orderID, status, location)
	return args.Error(0)
}

func (m *MockBackendGateway) RequestPayout(ctx context.Context, amount kernel.Money) (ports.PayoutReceipt, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(ports.PayoutReceipt), args.Error(1)
}

func (m *MockBackendGateway) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockBackendGateway) ReplyTicket(ctx context.Context, ticketID kernel.UUID, response ticket.Response) error {
	args := m.Called(ctx, ticketID, response)
	return args.Error(0)
}

func (m *MockBackendGateway) UpdateProfile(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBackendGateway) UploadDocument(ctx context.Context, d *account.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockBackendGateway) SubmitRating(ctx context.Context, r account.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockSecretStore struct{ mock.Mock }

func (m *MockSecretStore) SaveSession(ctx context.Context, session ports.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSecretStore) LoadSession(ctx context.Context) (ports.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockSecretStore) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliveryUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockDeliveryUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockDeliveryUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockEarningsUoW struct{ mock.Mock }

func (m *MockEarningsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEarningsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEarningsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEarningsUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockEarningsUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockEarningsUoWFactory struct{ mock.Mock }

func (m *MockEarningsUoWFactory) Create() commands.EarningsUoW {
	args := m.Called()
	return args.Get(0).(commands.EarningsUoW)
}

type MockTicketUoW struct{ mock.Mock }

func (m *MockTicketUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTicketUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTicketUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTicketUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

type MockTicketUoWFactory struct{ mock.Mock }

func (m *MockTicketUoWFactory) Create() commands.TicketUoW {
	args := m.Called()
	return args.Get(0).(commands.TicketUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}
