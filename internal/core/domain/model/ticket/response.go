package ticket

import (
	"errors"
	"fmt"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

// ErrResponseIsNotConstructed is returned when a Response was not created
// through the NewResponse factory.
var ErrResponseIsNotConstructed = errors.New(
	"Response must be created via NewResponse constructor")

// Author identifies which side of the conversation wrote a response.
type Author int

const (
	// AuthorUnknown represents an invalid or undefined author.
	AuthorUnknown Author = iota

	// AuthorPartner is the delivery partner who opened the ticket.
	AuthorPartner

	// AuthorSupport is the platform support agent.
	AuthorSupport
)

func getAuthorStrings() map[Author]string {
	//nolint:exhaustive // AuthorUnknown is intentionally excluded as it's invalid
	return map[Author]string{
		AuthorPartner: "partner",
		AuthorSupport: "support",
	}
}

// AuthorFromString parses the wire representation of a response author.
func AuthorFromString(s string) (Author, error) {
	for a, str := range getAuthorStrings() {
		if str == s {
			return a, nil
		}
	}
	return AuthorUnknown, errs.NewValueIsInvalidErrorWithCause("response author is invalid",
		fmt.Errorf("%q is not a valid response author", s))
}

// Validate checks the author is one of the defined values.
func (a Author) Validate() error {
	if _, ok := getAuthorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("response author is invalid",
			fmt.Errorf("%d is not a valid response author", a))
	}
	return nil
}

// String returns the wire name of the author.
func (a Author) String() string {
	if str, ok := getAuthorStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Response is one immutable message in a ticket's conversation thread.
type Response struct {
	id        kernel.UUID
	author    Author
	message   string
	createdAt time.Time

	isConstructed bool
}

// NewResponse creates a validated conversation message.
func NewResponse(id kernel.UUID, author Author, message string, createdAt time.Time) (Response, error) {
	r := Response{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setAuthor(author),
		r.setMessage(message),
		r.setCreatedAt(createdAt),
	); err != nil {
		return Response{}, err
	}

	return r, nil
}

// Validate ensures the Response was created via NewResponse.
func (r Response) Validate() error {
	if !r.isConstructed {
		return ErrResponseIsNotConstructed
	}
	return nil
}

// ID returns the response identifier.
func (r Response) ID() kernel.UUID {
	return r.id
}

// Author returns who wrote the response.
func (r Response) Author() Author {
	return r.author
}

// Message returns the response text.
func (r Response) Message() string {
	return r.message
}

// CreatedAt returns when the response was written.
func (r Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Response) setAuthor(author Author) error {
	if err := author.Validate(); err != nil {
		return err
	}
	r.author = author
	return nil
}

func (r *Response) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	r.message = message
	return nil
}

func (r *Response) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
