package bot

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rayanhq/tagbot/internal/model"
)

// User-visible product text.
const (
	introText = "Hi! 😎 I can add a cover image to an audio file, or change its title and artist name. Just send me an audio file to start! 🎵"

	menuText             = "What next?"
	promptImageText      = "Please send me the image you want as cover."
	promptTitleText      = "Please type the title you want."
	promptArtistText     = "Please type the artist name you want."
	imageSavedText       = "Image saved!"
	alreadyProcessedText = "✅ You’ve already processed this audio. Send a new one to start again."
	noAudioText          = "No audio found in your session."
	doneText             = "✅ Done! Your audio is ready."
	downloadFailedText   = "Sorry, I couldn’t download that file. Please try again."
)

var menuButtons = []model.Button{
	{Label: "🎨 Set Image", Action: model.ActionSetImage},
	{Label: "🎵 Set Title", Action: model.ActionSetTitle},
	{Label: "🎤 Set Artist", Action: model.ActionSetArtist},
	{Label: "✅ Finish & Get File", Action: model.ActionFinish},
}

// handleAudio creates or fully resets the user's session. Any prior
// title, artist, or image is discarded so nothing leaks from the
// previous conversation.
func (h *Handler) handleAudio(ctx context.Context, e model.AudioUploaded) {
	suffix := strings.ToLower(filepath.Ext(e.File.Name))
	if suffix == "" {
		suffix = ".bin"
	}

	path, err := h.files.Fetch(ctx, e.File, suffix)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", e.UserID).Msg("audio download failed")
		h.replyText(ctx, e.ChatID, downloadFailedText)
		return
	}

	h.store.Start(e.UserID, e.ChatID, path, e.File.Name)
	h.log.Info().Int64("user_id", e.UserID).Str("path", path).Msg("session started")
	h.replyMenu(ctx, e.ChatID)
}

// handlePhoto consumes a photo only while a cover image is awaited.
// Photos arriving at any other time are silently ignored; that is the
// intended UX, not an omission.
func (h *Handler) handlePhoto(ctx context.Context, e model.PhotoUploaded) {
	sess, ok := h.store.Get(e.UserID)
	if !ok || sess.Awaiting != model.AwaitImage {
		return
	}
	sess.Awaiting = model.AwaitNone

	path, err := h.files.Fetch(ctx, e.File, ".jpg")
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", e.UserID).Msg("image download failed")
		h.replyText(ctx, e.ChatID, downloadFailedText)
		h.replyMenu(ctx, e.ChatID)
		return
	}

	sess.ImagePath = path
	h.replyText(ctx, e.ChatID, imageSavedText)
	h.replyMenu(ctx, e.ChatID)
}

// handleText consumes text only while a title or artist is awaited.
// Unexpected text is silently ignored.
func (h *Handler) handleText(ctx context.Context, e model.TextMessage) {
	sess, ok := h.store.Get(e.UserID)
	if !ok {
		return
	}

	switch sess.Awaiting {
	case model.AwaitTitle:
		sess.Awaiting = model.AwaitNone
		sess.Title = e.Text
		h.replyText(ctx, e.ChatID, fmt.Sprintf("Title set to: %s", e.Text))
	case model.AwaitArtist:
		sess.Awaiting = model.AwaitNone
		sess.Artist = e.Text
		h.replyText(ctx, e.ChatID, fmt.Sprintf("Artist set to: %s", e.Text))
	default:
		return
	}

	h.replyMenu(ctx, e.ChatID)
}

// handleButton reacts to a menu selection.
//
// A finalized session answers every button with a fixed notice and
// mutates nothing; only a fresh audio upload restarts the flow.
func (h *Handler) handleButton(ctx context.Context, e model.ButtonPressed) {
	if h.store.Finalized(e.UserID) {
		h.replyText(ctx, e.ChatID, alreadyProcessedText)
		return
	}

	sess, ok := h.store.Get(e.UserID)
	if !ok {
		// Stray buttons from before a restart. Finish still deserves an
		// answer; the field selectors are no-ops without a session.
		if e.Action == model.ActionFinish {
			h.replyText(ctx, e.ChatID, noAudioText)
		}
		return
	}

	switch e.Action {
	case model.ActionSetImage:
		sess.Awaiting = model.AwaitImage
		h.replyText(ctx, e.ChatID, promptImageText)
	case model.ActionSetTitle:
		sess.Awaiting = model.AwaitTitle
		h.replyText(ctx, e.ChatID, promptTitleText)
	case model.ActionSetArtist:
		sess.Awaiting = model.AwaitArtist
		h.replyText(ctx, e.ChatID, promptArtistText)
	case model.ActionFinish:
		h.finish(ctx, e.ChatID, sess)
	}
}
