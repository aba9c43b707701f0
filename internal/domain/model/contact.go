package model

import "time"

// MessageStatus tracks triage state of a contact message.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// Valid reports whether the status is a known triage state.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// ContactMessage is an inquiry submitted through the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}
