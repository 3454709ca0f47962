package account

import (
	"errors"
	"fmt"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

// Domain errors for document operations.
var (
	// ErrDocumentIsNotConstructed is returned when a Document was not created
	// through the NewDocument factory.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

	// ErrDocumentAlreadyReviewed is returned when verifying or rejecting a
	// document that already left the pending state.
	ErrDocumentAlreadyReviewed = errors.New("document has already been reviewed")

	// ErrRejectionReasonIsRequired is returned when rejecting a document
	// without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection reason")
)

// DocumentType identifies a compliance document the partner must hold.
type DocumentType int

const (
	// DocumentUnknown represents an invalid or undefined document type.
	DocumentUnknown DocumentType = iota

	// DocumentLicense is the driving license.
	DocumentLicense

	// DocumentRegistration is the vehicle registration certificate.
	DocumentRegistration

	// DocumentInsurance is the vehicle insurance policy.
	DocumentInsurance
)

func getDocumentTypeStrings() map[DocumentType]string {
	//nolint:exhaustive // DocumentUnknown is intentionally excluded as it's invalid
	return map[DocumentType]string{
		DocumentLicense:      "license",
		DocumentRegistration: "registration",
		DocumentInsurance:    "insurance",
	}
}

// DocumentTypeFromString parses the wire representation of a document type.
func DocumentTypeFromString(s string) (DocumentType, error) {
	for d, str := range getDocumentTypeStrings() {
		if str == s {
			return d, nil
		}
	}
	return DocumentUnknown, errs.NewValueIsInvalidErrorWithCause("document type is invalid",
		fmt.Errorf("%q is not a valid document type", s))
}

// Validate checks the document type is one of the defined values.
func (d DocumentType) Validate() error {
	if _, ok := getDocumentTypeStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document type is invalid",
			fmt.Errorf("%d is not a valid document type", d))
	}
	return nil
}

// String returns the wire name of the document type.
func (d DocumentType) String() string {
	if str, ok := getDocumentTypeStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// DocumentStatus tracks the platform's review of an uploaded document.
type DocumentStatus int

const (
	// DocumentStatusUnknown represents an invalid or undefined status.
	DocumentStatusUnknown DocumentStatus = iota

	// DocumentPending means the document awaits review.
	DocumentPending

	// DocumentVerified means the document was accepted.
	DocumentVerified

	// DocumentRejected means the document was refused and must be re-uploaded.
	DocumentRejected
)

func getDocumentStatusStrings() map[DocumentStatus]string {
	//nolint:exhaustive // DocumentStatusUnknown is intentionally excluded as it's invalid
	return map[DocumentStatus]string{
		DocumentPending:  "pending",
		DocumentVerified: "verified",
		DocumentRejected: "rejected",
	}
}

// DocumentStatusFromString parses the wire representation of a document status.
func DocumentStatusFromString(s string) (DocumentStatus, error) {
	for d, str := range getDocumentStatusStrings() {
		if str == s {
			return d, nil
		}
	}
	return DocumentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("document status is invalid",
		fmt.Errorf("%q is not a valid document status", s))
}

// Validate checks the document status is one of the defined values.
func (d DocumentStatus) Validate() error {
	if _, ok := getDocumentStatusStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document status is invalid",
			fmt.Errorf("%d is not a valid document status", d))
	}
	return nil
}

// String returns the wire name of the document status.
func (d DocumentStatus) String() string {
	if str, ok := getDocumentStatusStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Document is one uploaded compliance document and its review outcome.
// A rejected document is not edited in place; the partner uploads a new one.
type Document struct {
	id              kernel.UUID
	docType         DocumentType
	fileURL         string
	status          DocumentStatus
	rejectionReason string
	uploadedAt      time.Time
	reviewedAt      *time.Time

	isConstructed bool
}

// NewDocument records a fresh upload awaiting review.
func NewDocument(id kernel.UUID, docType DocumentType, fileURL string, uploadedAt time.Time) (*Document, error) {
	d := &Document{
		status:        DocumentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setType(docType),
		d.setFileURL(fileURL),
		d.setUploadedAt(uploadedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument reconstructs a Document from persistent storage.
func RestoreDocument(
	id kernel.UUID,
	docType DocumentType,
	fileURL string,
	status DocumentStatus,
	rejectionReason string,
	uploadedAt time.Time,
	reviewedAt *time.Time,
) (*Document, error) {
	d := &Document{
		rejectionReason: rejectionReason,
		reviewedAt:      reviewedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setType(docType),
		d.setFileURL(fileURL),
		d.setStatus(status),
		d.setUploadedAt(uploadedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Document was created through one of its constructors.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// ID returns the document identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// Type returns the document type.
func (d *Document) Type() DocumentType {
	return d.docType
}

// FileURL returns where the uploaded file is stored.
func (d *Document) FileURL() string {
	return d.fileURL
}

// Status returns the review status.
func (d *Document) Status() DocumentStatus {
	return d.status
}

// RejectionReason returns why the document was rejected, empty otherwise.
func (d *Document) RejectionReason() string {
	return d.rejectionReason
}

// UploadedAt returns when the document was uploaded.
func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}

// ReviewedAt returns when the review concluded, nil while pending.
func (d *Document) ReviewedAt() *time.Time {
	return d.reviewedAt
}

// Verify accepts a pending document.
func (d *Document) Verify(at time.Time) error {
	if d.status != DocumentPending {
		return ErrDocumentAlreadyReviewed
	}

	d.status = DocumentVerified
	d.reviewedAt = &at
	return nil
}

// Reject refuses a pending document with a reason.
func (d *Document) Reject(reason string, at time.Time) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}
	if d.status != DocumentPending {
		return ErrDocumentAlreadyReviewed
	}

	d.status = DocumentRejected
	d.rejectionReason = reason
	d.reviewedAt = &at
	return nil
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setType(docType DocumentType) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	d.docType = docType
	return nil
}

func (d *Document) setFileURL(fileURL string) error {
	if fileURL == "" {
		return errs.NewValueIsRequiredError("fileURL")
	}
	d.fileURL = fileURL
	return nil
}

func (d *Document) setStatus(status DocumentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Document) setUploadedAt(uploadedAt time.Time) error {
	if uploadedAt.IsZero() {
		return errs.NewValueIsRequiredError("uploadedAt")
	}
	d.uploadedAt = uploadedAt
	return nil
}
