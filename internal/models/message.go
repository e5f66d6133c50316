package models

// Message is a single chat line posted to a ride's group chat.
// Messages are append-only: never edited, never deleted.
type Message struct {
	// ID is the unique identifier for the message (UUID format).
	ID string

	// RideID is the ride whose chat this message belongs to.
	RideID string

	// SenderID is the user who posted the message.
	SenderID string

	// Text is the message body, trimmed of surrounding whitespace.
	Text string

	// Timestamp is the Unix time in milliseconds. It is the ordering key of
	// the chat log and strictly increases across appended messages.
	Timestamp int64
}
