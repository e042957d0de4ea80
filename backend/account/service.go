package account

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidAccount is returned when a candidate account fails
	// field validation (blank username or password shorter than four
	// characters).
	ErrInvalidAccount = errors.New("invalid account")
	// ErrUsernameTaken is returned when the username is already in use.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrBadCredentials is returned when no account matches the given
	// username and password.
	ErrBadCredentials = errors.New("bad credentials")
)

// Service applies the account rules on top of a Store.
type Service struct {
	store    Store
	validate *validator.Validate
}

func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// Register validates the candidate account and persists it. An account
// is valid if the username is not blank, the password is at least four
// characters long and the username is not already taken. The username
// pre-check and the insert are separate round trips; the store's
// unique constraint is what actually guarantees uniqueness.
func (s *Service) Register(a Account) (*Account, error) {
	if err := s.validate.Struct(a); err != nil {
		return nil, ErrInvalidAccount
	}
	taken, err := s.store.UsernameExists(a.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	return s.store.InsertAccount(a.Username, a.Password)
}

// Login looks up an account by exact username and password match.
func (s *Service) Login(a Account) (*Account, error) {
	found, err := s.store.FindAccountByCredentials(a.Username, a.Password)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrBadCredentials
	}
	return found, nil
}
