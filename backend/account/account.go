package account

// Account represents a registered user identity.
type Account struct {
	ID       int    `json:"account_id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=4"`
}

// Store is the persistence contract the account rules depend on.
type Store interface {
	InsertAccount(username, password string) (*Account, error)
	FindAccountByCredentials(username, password string) (*Account, error)
	UsernameExists(username string) (bool, error)
	AccountExists(id int) (bool, error)
}
