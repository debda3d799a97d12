package bot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rayanhq/tagbot/internal/audio"
	ioutils "github.com/rayanhq/tagbot/internal/io"
	"github.com/rayanhq/tagbot/internal/model"
	"github.com/rayanhq/tagbot/internal/session"
)

// Responder delivers outbound replies to a chat. Implementations must
// send synchronously so per-user prompt ordering is preserved.
type Responder interface {
	// ReplyText sends a plain text message.
	ReplyText(ctx context.Context, chatID int64, text string) error

	// ReplyMenu sends a text message with an inline button menu.
	ReplyMenu(ctx context.Context, chatID int64, text string, buttons []model.Button) error

	// ReplyDocument sends a file as a named document.
	ReplyDocument(ctx context.Context, chatID int64, filename string, data []byte) error
}

// FileSource resolves transport file references to local files.
type FileSource interface {
	// Fetch downloads the referenced file into a new temporary file
	// whose name ends with suffix and returns its path. The caller owns
	// the file.
	Fetch(ctx context.Context, ref model.FileRef, suffix string) (string, error)
}

// Transcoder normalizes audio to MP3. *audio.Transcoder satisfies it.
type Transcoder interface {
	EnsureMP3(ctx context.Context, path string) (string, error)
}

// Config wires a Handler's collaborators.
type Config struct {
	Store      *session.Store
	Files      FileSource
	Responder  Responder
	Transcoder Transcoder
	Tagger     *audio.Tagger
	Covers     *ioutils.CoverService

	// CoverMaxDimension bounds embedded cover art. Zero means 1000.
	CoverMaxDimension int

	Logger zerolog.Logger
}

// Handler is the conversation state machine.
//
// It interprets inbound events against the session store and emits
// prompts, menus, and finally the tagged document. Handle may be called
// concurrently for distinct users; events for the same user are not
// serialized (a duplicate button tap may race, last writer wins).
type Handler struct {
	store      *session.Store
	files      FileSource
	out        Responder
	transcoder Transcoder
	tagger     *audio.Tagger
	covers     *ioutils.CoverService
	coverMax   int
	log        zerolog.Logger
}

// NewHandler creates a Handler from cfg.
func NewHandler(cfg Config) *Handler {
	coverMax := cfg.CoverMaxDimension
	if coverMax <= 0 {
		coverMax = 1000
	}
	return &Handler{
		store:      cfg.Store,
		files:      cfg.Files,
		out:        cfg.Responder,
		transcoder: cfg.Transcoder,
		tagger:     cfg.Tagger,
		covers:     cfg.Covers,
		coverMax:   coverMax,
		log:        cfg.Logger,
	}
}

// Handle dispatches one inbound event.
//
// Nothing escapes: errors are reported to the user where the contract
// says so and panics are contained, so one bad update can never take
// down the event loop for other users.
func (h *Handler) Handle(ctx context.Context, ev model.Event) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Int64("user_id", ev.User()).Interface("panic", r).Msg("recovered from event handler panic")
		}
	}()

	switch e := ev.(type) {
	case model.CommandStart:
		h.replyText(ctx, e.ChatID, introText)
	case model.AudioUploaded:
		h.handleAudio(ctx, e)
	case model.PhotoUploaded:
		h.handlePhoto(ctx, e)
	case model.TextMessage:
		h.handleText(ctx, e)
	case model.ButtonPressed:
		h.handleButton(ctx, e)
	}
}

func (h *Handler) replyText(ctx context.Context, chatID int64, text string) {
	if err := h.out.ReplyText(ctx, chatID, text); err != nil {
		h.log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}

func (h *Handler) replyMenu(ctx context.Context, chatID int64) {
	if err := h.out.ReplyMenu(ctx, chatID, menuText, menuButtons); err != nil {
		h.log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to send menu")
	}
}
