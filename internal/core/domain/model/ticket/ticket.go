package ticket

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

const (
	titleMinLength       = 3
	titleMaxLength       = 120
	descriptionMinLength = 10
	descriptionMaxLength = 2000
)

// Domain errors for ticket operations.
var (
	// ErrTicketIsNotConstructed is returned when using an improperly initialized Ticket.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

	// ErrTicketIsClosed is returned when mutating a closed ticket.
	ErrTicketIsClosed = errors.New("ticket is closed")

	// ErrTicketIsNotResolved is returned when closing a ticket that was not resolved first.
	ErrTicketIsNotResolved = errors.New("ticket must be resolved before closing")
)

// Ticket is the support conversation aggregate. A ticket is opened by the
// partner, worked by support through the response thread, resolved by
// support, and finally closed. Closed is terminal.
type Ticket struct {
	id          kernel.UUID
	title       string
	description string
	category    Category
	priority    Priority
	status      Status
	orderID     *kernel.UUID
	images      []string
	responses   []Response
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewTicket opens a new ticket in the open status. orderID is optional and
// links the ticket to a specific order for order-issue tickets.
func NewTicket(
	id kernel.UUID,
	title string,
	description string,
	category Category,
	priority Priority,
	orderID *kernel.UUID,
	images []string,
	createdAt time.Time,
) (*Ticket, error) {
	t := &Ticket{
		status: StatusOpen,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTitle(title),
		t.setDescription(description),
		t.setCategory(category),
		t.setPriority(priority),
		t.setOrderID(orderID),
		t.setImages(images),
		t.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	t.updatedAt = t.createdAt
	return t, nil
}

// RestoreTicket reconstructs a Ticket aggregate from persistent storage.
func RestoreTicket(
	id kernel.UUID,
	title string,
	description string,
	category Category,
	priority Priority,
	status Status,
	orderID *kernel.UUID,
	images []string,
	responses []Response,
	createdAt time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	t := &Ticket{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTitle(title),
		t.setDescription(description),
		t.setCategory(category),
		t.setPriority(priority),
		t.setStatus(status),
		t.setOrderID(orderID),
		t.setImages(images),
		t.setResponses(responses),
		t.setCreatedAt(createdAt),
		t.setUpdatedAt(updatedAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// IsEqual compares two tickets by identity.
func (t *Ticket) IsEqual(other *Ticket) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// Validate checks if the Ticket was properly constructed.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// ID returns the ticket identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// Title returns the ticket title.
func (t *Ticket) Title() string {
	return t.title
}

// Description returns the ticket description.
func (t *Ticket) Description() string {
	return t.description
}

// Category returns the ticket category.
func (t *Ticket) Category() Category {
	return t.category
}

// Priority returns the ticket priority.
func (t *Ticket) Priority() Priority {
	return t.priority
}

// Status returns the current workflow status.
func (t *Ticket) Status() Status {
	return t.status
}

// OrderID returns the linked order, or nil when the ticket is not
// order-specific.
func (t *Ticket) OrderID() *kernel.UUID {
	return t.orderID
}

// Images returns the attached image references.
func (t *Ticket) Images() []string {
	out := make([]string, len(t.images))
	copy(out, t.images)
	return out
}

// Responses returns the conversation thread in chronological order.
func (t *Ticket) Responses() []Response {
	out := make([]Response, len(t.responses))
	copy(out, t.responses)
	return out
}

// CreatedAt returns when the ticket was opened.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns when the ticket last changed.
func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// AddResponse appends a message to the conversation thread. The first
// support response moves an open ticket to in_progress. Closed tickets
// accept no further responses.
func (t *Ticket) AddResponse(response Response) error {
	if err := response.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return ErrTicketIsClosed
	}

	t.responses = append(t.responses, response)
	if t.status == StatusOpen && response.Author() == AuthorSupport {
		t.status = StatusInProgress
	}
	t.updatedAt = response.CreatedAt()
	return nil
}

// Resolve marks the ticket as handled. Legal from open and in_progress.
func (t *Ticket) Resolve(at time.Time) error {
	if t.status.IsTerminal() {
		return ErrTicketIsClosed
	}
	if t.status == StatusResolved {
		return nil
	}

	t.status = StatusResolved
	t.updatedAt = at
	return nil
}

// Close terminates a resolved ticket. A ticket must be resolved before it
// can be closed.
func (t *Ticket) Close(at time.Time) error {
	if t.status.IsTerminal() {
		return ErrTicketIsClosed
	}
	if t.status != StatusResolved {
		return ErrTicketIsNotResolved
	}

	t.status = StatusClosed
	t.updatedAt = at
	return nil
}

// Reopen moves a resolved ticket back to in_progress when the partner
// replies disputing the resolution.
func (t *Ticket) Reopen(at time.Time) error {
	if t.status.IsTerminal() {
		return ErrTicketIsClosed
	}
	if t.status != StatusResolved {
		return nil
	}

	t.status = StatusInProgress
	t.updatedAt = at
	return nil
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setTitle(title string) error {
	if err := validate.Required("title", title); err != nil {
		return err
	}
	if err := validate.LengthBetween("title", title, titleMinLength, titleMaxLength); err != nil {
		return err
	}
	t.title = title
	return nil
}

func (t *Ticket) setDescription(description string) error {
	if err := validate.Required("description", description); err != nil {
		return err
	}
	if err := validate.LengthBetween(
		"description", description, descriptionMinLength, descriptionMaxLength); err != nil {
		return err
	}
	t.description = description
	return nil
}

func (t *Ticket) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	t.category = category
	return nil
}

func (t *Ticket) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Ticket) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Ticket) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Ticket) setImages(images []string) error {
	for _, image := range images {
		if image == "" {
			return errs.NewValueIsRequiredError("image")
		}
	}
	t.images = make([]string, len(images))
	copy(t.images, images)
	return nil
}

func (t *Ticket) setResponses(responses []Response) error {
	for _, r := range responses {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	t.responses = make([]Response, len(responses))
	copy(t.responses, responses)
	return nil
}

func (t *Ticket) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	t.createdAt = createdAt
	return nil
}

func (t *Ticket) setUpdatedAt(updatedAt time.Time) error {
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	t.updatedAt = updatedAt
	return nil
}
