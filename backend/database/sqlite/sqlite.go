package sqlite

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/PressureTank/Chirp/backend/account"
	"github.com/PressureTank/Chirp/backend/message"
)

// SQLiteDB is the storage gateway over the account and message tables.
// Every operation is a single parameterized round trip; storage faults
// are logged here and returned to the caller as errors, while "no such
// row" is reported as a nil result.
type SQLiteDB struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ account.Store = (*SQLiteDB)(nil)
var _ message.Store = (*SQLiteDB)(nil)

func NewSQLiteDB(db *sql.DB, logger *zap.Logger) *SQLiteDB {
	return &SQLiteDB{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the tables if they do not exist. The unique
// constraint on username is what makes concurrent registrations safe;
// the rules layer only pre-checks for a friendlier rejection.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS account (
			account_id INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT UNIQUE NOT NULL,
			password   TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS message (
			message_id        INTEGER PRIMARY KEY AUTOINCREMENT,
			posted_by         INTEGER NOT NULL,
			message_text      TEXT NOT NULL,
			time_posted_epoch INTEGER NOT NULL
		);
	`)
	return err
}

func (s *SQLiteDB) InsertAccount(username, password string) (*account.Account, error) {
	res, err := s.db.Exec("INSERT INTO account (username, password) VALUES (?, ?)", username, password)
	if err != nil {
		s.logger.Error("inserting account", zap.Error(err))
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		s.logger.Error("reading generated account id", zap.Error(err))
		return nil, err
	}
	return &account.Account{ID: int(id), Username: username, Password: password}, nil
}

func (s *SQLiteDB) FindAccountByCredentials(username, password string) (*account.Account, error) {
	row := s.db.QueryRow(
		"SELECT account_id, username, password FROM account WHERE username=? AND password=?",
		username, password)

	var a account.Account
	err := row.Scan(&a.ID, &a.Username, &a.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		s.logger.Error("fetching account by credentials", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (s *SQLiteDB) UsernameExists(username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM account WHERE username=?)", username).Scan(&exists)
	if err != nil {
		s.logger.Error("checking username", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (s *SQLiteDB) AccountExists(id int) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM account WHERE account_id=?)", id).Scan(&exists)
	if err != nil {
		s.logger.Error("checking account id", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (s *SQLiteDB) InsertMessage(m message.Message) (*message.Message, error) {
	res, err := s.db.Exec(
		"INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?)",
		m.PostedBy, m.Text, m.TimePostedEpoch)
	if err != nil {
		s.logger.Error("inserting message", zap.Error(err))
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		s.logger.Error("reading generated message id", zap.Error(err))
		return nil, err
	}
	m.ID = int(id)
	return &m, nil
}

func (s *SQLiteDB) FindMessageByID(id int) (*message.Message, error) {
	row := s.db.QueryRow(
		"SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE message_id=?",
		id)

	var m message.Message
	err := row.Scan(&m.ID, &m.PostedBy, &m.Text, &m.TimePostedEpoch)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		s.logger.Error("fetching message", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteDB) ListAllMessages() ([]message.Message, error) {
	return s.listMessages("SELECT message_id, posted_by, message_text, time_posted_epoch FROM message ORDER BY message_id")
}

func (s *SQLiteDB) ListMessagesByAuthor(postedBy int) ([]message.Message, error) {
	return s.listMessages(
		"SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE posted_by=? ORDER BY message_id",
		postedBy)
}

func (s *SQLiteDB) listMessages(query string, args ...any) ([]message.Message, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("fetching messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	messages := []message.Message{}
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.TimePostedEpoch); err != nil {
			s.logger.Error("scanning message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("iterating message rows", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

// DeleteMessageByID returns the message as it existed before deletion.
// The delete itself is conditional: zero affected rows means another
// caller got there first and the result is absent.
func (s *SQLiteDB) DeleteMessageByID(id int) (*message.Message, error) {
	existing, err := s.FindMessageByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	res, err := s.db.Exec("DELETE FROM message WHERE message_id=?", id)
	if err != nil {
		s.logger.Error("deleting message", zap.Error(err))
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return existing, nil
}

// UpdateMessageText overwrites message_text only. Zero affected rows
// means the id does not exist and the result is absent.
func (s *SQLiteDB) UpdateMessageText(id int, text string) (*message.Message, error) {
	res, err := s.db.Exec("UPDATE message SET message_text=? WHERE message_id=?", text, id)
	if err != nil {
		s.logger.Error("updating message", zap.Error(err))
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.FindMessageByID(id)
}

func (s *SQLiteDB) MessageExists(id int) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM message WHERE message_id=?)", id).Scan(&exists)
	if err != nil {
		s.logger.Error("checking message id", zap.Error(err))
		return false, err
	}
	return exists, nil
}
