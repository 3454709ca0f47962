package commands

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/ports"
)

// UploadDocumentCommandHandler records a document upload locally and
// registers it with the backend before committing.
type UploadDocumentCommandHandler struct {
	uowFactory AccountUoWFactory
	gateway    ports.BackendGateway
}

// NewUploadDocumentCommandHandler creates a handler for document uploads.
func NewUploadDocumentCommandHandler(
	uowFactory AccountUoWFactory,
	gateway ports.BackendGateway,
) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the upload document command.
func (h UploadDocumentCommandHandler) Handle(ctx context.Context, command UploadDocumentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	document, err := account.NewDocument(
		kernel.NewUUID(),
		command.DocType(),
		command.FileURL(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().AddDocument(ctx, document); err != nil {
		return err
	}

	if err = h.gateway.UploadDocument(ctx, document); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
