package message

// Message represents a timestamped text post authored by an account.
type Message struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	Text            string `json:"message_text" validate:"min=1,max=254"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// Store is the persistence contract the message rules depend on.
type Store interface {
	InsertMessage(m Message) (*Message, error)
	FindMessageByID(id int) (*Message, error)
	ListAllMessages() ([]Message, error)
	ListMessagesByAuthor(postedBy int) ([]Message, error)
	DeleteMessageByID(id int) (*Message, error)
	UpdateMessageText(id int, text string) (*Message, error)
	MessageExists(id int) (bool, error)
}

// AuthorDirectory reports whether a message author exists. Messages
// keep a foreign reference to an account, so the rules need this one
// lookup from the account side.
type AuthorDirectory interface {
	AccountExists(id int) (bool, error)
}
