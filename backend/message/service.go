package message

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Message text must be between 1 and 254 characters inclusive.
const textRule = "min=1,max=254"

var (
	// ErrInvalidText is returned when the message text is empty or
	// longer than 254 characters.
	ErrInvalidText = errors.New("invalid message text")
	// ErrUnknownAuthor is returned when posted_by does not reference an
	// existing account.
	ErrUnknownAuthor = errors.New("unknown author")
	// ErrNotFound is returned by Update when the message id does not
	// exist.
	ErrNotFound = errors.New("message not found")
)

// Service applies the message rules on top of a Store.
type Service struct {
	store    Store
	accounts AuthorDirectory
	validate *validator.Validate
}

func NewService(store Store, accounts AuthorDirectory) *Service {
	return &Service{
		store:    store,
		accounts: accounts,
		validate: validator.New(),
	}
}

// Create validates the message and persists it. The author check is
// advisory and only happens here; reads never re-validate it.
func (s *Service) Create(m Message) (*Message, error) {
	if err := s.validate.Struct(m); err != nil {
		return nil, ErrInvalidText
	}
	known, err := s.accounts.AccountExists(m.PostedBy)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrUnknownAuthor
	}
	return s.store.InsertMessage(m)
}

// Update overwrites the text of an existing message. The conditional
// update in the store is authoritative: a message deleted between the
// existence check and the update still comes back as ErrNotFound.
func (s *Service) Update(id int, text string) (*Message, error) {
	if err := s.validate.Var(text, textRule); err != nil {
		return nil, ErrInvalidText
	}
	exists, err := s.store.MessageExists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	updated, err := s.store.UpdateMessageText(id, text)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// GetByID returns the message, or nil when no such message exists.
func (s *Service) GetByID(id int) (*Message, error) {
	return s.store.FindMessageByID(id)
}

// DeleteByID removes the message and returns it as it existed before
// deletion, or nil when there was nothing to delete.
func (s *Service) DeleteByID(id int) (*Message, error) {
	return s.store.DeleteMessageByID(id)
}

// ListAll returns every message in creation order.
func (s *Service) ListAll() ([]Message, error) {
	return s.store.ListAllMessages()
}

// ListByAuthor returns the author's messages in creation order. An
// unknown author yields an empty list, not an error.
func (s *Service) ListByAuthor(postedBy int) ([]Message, error) {
	return s.store.ListMessagesByAuthor(postedBy)
}
