package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand records a compliance document upload.
type UploadDocumentCommand struct { //nolint:recvcheck //using for validation
	docType account.DocumentType
	fileURL string

	guard guard.ConstructorGuard
}

// NewUploadDocumentCommand creates a command to record a document upload.
func NewUploadDocumentCommand(docType account.DocumentType, fileURL string) (UploadDocumentCommand, error) {
	cmd := UploadDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocType(docType),
		cmd.setFileURL(fileURL),
	); err != nil {
		return UploadDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

// DocType returns the document type.
func (c UploadDocumentCommand) DocType() account.DocumentType {
	return c.docType
}

// FileURL returns where the uploaded file is stored.
func (c UploadDocumentCommand) FileURL() string {
	return c.fileURL
}

func (c *UploadDocumentCommand) setDocType(docType account.DocumentType) error {
	if err := docType.Validate(); err != nil {
		return err
	}

	c.docType = docType
	return nil
}

func (c *UploadDocumentCommand) setFileURL(fileURL string) error {
	if err := validate.Required("fileURL", fileURL); err != nil {
		return err
	}

	c.fileURL = fileURL
	return nil
}
