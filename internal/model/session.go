package model

// AwaitedField identifies which input the bot expects next from a user.
//
// At most one field is awaited at a time. The field is cleared the moment
// an input of the matching kind is consumed, so a session never carries
// more than one outstanding question.
type AwaitedField int

const (
	// AwaitNone means no input is expected; text and photos are ignored.
	AwaitNone AwaitedField = iota

	// AwaitTitle means the next text message becomes the track title.
	AwaitTitle

	// AwaitArtist means the next text message becomes the artist name.
	AwaitArtist

	// AwaitImage means the next photo becomes the cover image.
	AwaitImage
)

// String returns a human-readable name for the awaited field.
func (f AwaitedField) String() string {
	switch f {
	case AwaitTitle:
		return "title"
	case AwaitArtist:
		return "artist"
	case AwaitImage:
		return "image"
	default:
		return "none"
	}
}

// Session is the per-user conversation state.
//
// A session exists only after the user has uploaded at least one audio
// file. It is created (or fully reset) by an audio upload, mutated by
// text/photo/button events, and destroyed by the finalizer once the
// tagging pipeline has run.
//
// Empty Title/Artist means "leave the existing tag value untouched";
// empty ImagePath means "keep any embedded art as is".
type Session struct {
	// UserID is the chat-protocol identity the session is keyed by.
	UserID int64

	// ChatID is where replies for this session are delivered.
	ChatID int64

	// AudioPath is the absolute path of the uploaded audio blob.
	// The format is arbitrary until the transcoder has probed it.
	AudioPath string

	// AudioName is the original filename of the upload, used to name
	// the returned document. May be empty.
	AudioName string

	// ImagePath is the path of the uploaded cover image, empty until
	// the user sets one.
	ImagePath string

	// Title and Artist are the values the user asked for. Empty means
	// "preserve whatever the file already has".
	Title  string
	Artist string

	// Awaiting is the input the next matching event should populate.
	Awaiting AwaitedField

	// Finalized is set once the tagging pipeline has completed for this
	// session, successfully or not. A finalized session accepts no
	// further mutations.
	Finalized bool
}
