package model

// FileRef is an opaque handle to a file held by the chat transport.
// The transport knows how to resolve it to downloadable bytes.
type FileRef struct {
	// ID is the transport-specific file identifier.
	ID string

	// Name is the original filename, if the transport exposes one.
	Name string
}

// Button action identifiers carried in menu callbacks.
const (
	ActionSetImage  = "setimage"
	ActionSetTitle  = "settitle"
	ActionSetArtist = "setartist"
	ActionFinish    = "finish"
)

// Button is one entry of an inline reply menu.
type Button struct {
	Label  string
	Action string
}

// Event is an inbound occurrence delivered by the chat transport.
//
// Events for different users may be handled concurrently; all state they
// touch is keyed by User().
type Event interface {
	// User returns the identity of the user the event belongs to.
	User() int64
}

// CommandStart is the /start command.
type CommandStart struct {
	UserID int64
	ChatID int64
}

// AudioUploaded is an audio file upload. It creates or fully resets the
// user's session.
type AudioUploaded struct {
	UserID int64
	ChatID int64
	File   FileRef
}

// PhotoUploaded is a photo upload, consumed only while a cover image is
// awaited.
type PhotoUploaded struct {
	UserID int64
	ChatID int64
	File   FileRef
}

// TextMessage is a plain text message, consumed only while a title or
// artist is awaited.
type TextMessage struct {
	UserID int64
	ChatID int64
	Text   string
}

// ButtonPressed is a menu button selection.
type ButtonPressed struct {
	UserID int64
	ChatID int64
	Action string
}

func (e CommandStart) User() int64  { return e.UserID }
func (e AudioUploaded) User() int64 { return e.UserID }
func (e PhotoUploaded) User() int64 { return e.UserID }
func (e TextMessage) User() int64   { return e.UserID }
func (e ButtonPressed) User() int64 { return e.UserID }
