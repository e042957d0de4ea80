package account

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for exercising the rules without a
// database.
type fakeStore struct {
	nextID int
	byName map[string]Account
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byName: map[string]Account{}}
}

func (f *fakeStore) InsertAccount(username, password string) (*Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	a := Account{ID: f.nextID, Username: username, Password: password}
	f.byName[username] = a
	return &a, nil
}

func (f *fakeStore) FindAccountByCredentials(username, password string) (*Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.byName[username]
	if !ok || a.Password != password {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeStore) UsernameExists(username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byName[username]
	return ok, nil
}

func (f *fakeStore) AccountExists(id int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.byName {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func Test_Register_Assigns_ID(t *testing.T) {
	req := require.New(t)
	svc := NewService(newFakeStore())

	created, err := svc.Register(Account{Username: "amanda", Password: "password1"})
	req.NoError(err)
	req.Equal(1, created.ID)
	req.Equal("amanda", created.Username)
}

func Test_Register_Rejects_Blank_Username(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Register(Account{Username: "", Password: "password1"})
	require.ErrorIs(t, err, ErrInvalidAccount)
}

func Test_Register_Rejects_Short_Passwords(t *testing.T) {
	req := require.New(t)
	svc := NewService(newFakeStore())

	for _, password := range []string{"", "a", "ab", "abc"} {
		_, err := svc.Register(Account{Username: "amanda", Password: password})
		req.ErrorIs(err, ErrInvalidAccount, "password %q", password)
	}

	_, err := svc.Register(Account{Username: "amanda", Password: "abcd"})
	req.NoError(err)
}

func Test_Register_Rejects_Taken_Username(t *testing.T) {
	req := require.New(t)
	svc := NewService(newFakeStore())

	_, err := svc.Register(Account{Username: "amanda", Password: "password1"})
	req.NoError(err)

	_, err = svc.Register(Account{Username: "amanda", Password: "password2"})
	req.ErrorIs(err, ErrUsernameTaken)
}

func Test_Login_Requires_Exact_Case_Sensitive_Match(t *testing.T) {
	req := require.New(t)
	svc := NewService(newFakeStore())

	created, err := svc.Register(Account{Username: "amanda", Password: "password1"})
	req.NoError(err)

	matched, err := svc.Login(Account{Username: "amanda", Password: "password1"})
	req.NoError(err)
	req.Equal(created.ID, matched.ID)

	_, err = svc.Login(Account{Username: "amanda", Password: "wrong"})
	req.ErrorIs(err, ErrBadCredentials)

	_, err = svc.Login(Account{Username: "Amanda", Password: "password1"})
	req.ErrorIs(err, ErrBadCredentials)

	_, err = svc.Login(Account{Username: "amanda", Password: "PASSWORD1"})
	req.ErrorIs(err, ErrBadCredentials)
}

func Test_Register_Propagates_Storage_Faults(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection lost")
	svc := NewService(store)

	_, err := svc.Register(Account{Username: "amanda", Password: "password1"})
	require.ErrorIs(t, err, store.err)
}

func Test_Register_Accepts_Long_Usernames_And_Passwords(t *testing.T) {
	req := require.New(t)
	svc := NewService(newFakeStore())

	created, err := svc.Register(Account{
		Username: strings.Repeat("u", 100),
		Password: strings.Repeat("p", 100),
	})
	req.NoError(err)
	req.Equal(1, created.ID)
}
