package cmd

import (
	"riderhub/internal/adapters/out/backendhttp"
	"riderhub/internal/adapters/out/postgres"
	"riderhub/internal/adapters/out/postgres/secretstore"
	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/services"
	"riderhub/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	secrets       ports.SecretStore
	gateway       ports.BackendGateway
	minimumPayout kernel.Money
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	minimumPayout, err := kernel.MoneyFromString(configs.MinimumPayout)
	if err != nil {
		return CompositionRoot{}, err
	}

	secrets := secretstore.NewGormSecretStore(gormDB)

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		secrets:       secrets,
		gateway:       backendhttp.NewClient(configs.BackendAPIURL, secrets),
		minimumPayout: minimumPayout,
	}, nil
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.gateway, c.secrets)
}

func (c *CompositionRoot) CreateSendOTPCommandHandler() commands.SendOTPCommandHandler {
	return commands.NewSendOTPCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateLoginWithOTPCommandHandler() commands.LoginWithOTPCommandHandler {
	return commands.NewLoginWithOTPCommandHandler(c.gateway, c.secrets)
}

func (c *CompositionRoot) CreateRefreshSessionCommandHandler() commands.RefreshSessionCommandHandler {
	return commands.NewRefreshSessionCommandHandler(c.gateway, c.secrets)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.gateway, c.secrets)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncOrdersCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreatePostEarningCommandHandler() commands.PostEarningCommandHandler {
	var f commands.EarningsUoWFactory = FuncEarningsUoWFactory(func() commands.EarningsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostEarningCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestPayoutCommandHandler() commands.RequestPayoutCommandHandler {
	var f commands.EarningsUoWFactory = FuncEarningsUoWFactory(func() commands.EarningsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPayoutCommandHandler(f, c.gateway, c.minimumPayout)
}

func (c *CompositionRoot) CreateSettlePayoutCommandHandler() commands.SettlePayoutCommandHandler {
	var f commands.EarningsUoWFactory = FuncEarningsUoWFactory(func() commands.EarningsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettlePayoutCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTicketCommandHandler() commands.CreateTicketCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTicketCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateReplyTicketCommandHandler() commands.ReplyTicketCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplyTicketCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAvailabilityCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadDocumentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletQueryHandler() queries.GetWalletQueryHandler {
	return queries.NewGetWalletQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEarningsSummaryQueryHandler() queries.GetEarningsSummaryQueryHandler {
	return queries.NewGetEarningsSummaryQueryHandler(
		c.uowFactory.Create().OrderRepository(),
		services.NewEarningsCalculator(),
	)
}

func (c *CompositionRoot) CreateGetTicketsQueryHandler() queries.GetTicketsQueryHandler {
	return queries.NewGetTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEarningsUoWFactory func() commands.EarningsUoW

func (f FuncEarningsUoWFactory) Create() commands.EarningsUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
