package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rayanhq/tagbot/internal/audio"
	ioutils "github.com/rayanhq/tagbot/internal/io"
	"github.com/rayanhq/tagbot/internal/model"
)

// finish runs the tagging pipeline for a session: normalize the audio to
// MP3, merge tags, send the document back, then clean up.
//
// The finalizer runs on every exit path once a session reached this
// point, success or failure, so temporary files never outlive the
// attempt. Replies are sent before finalization to keep the per-user
// causal order of prompts.
func (h *Handler) finish(ctx context.Context, chatID int64, sess *model.Session) {
	working := ""
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Int64("user_id", sess.UserID).Interface("panic", r).Msg("recovered from tagging pipeline panic")
			h.replyText(ctx, chatID, fmt.Sprintf("❌ Tagging failed: %v", r))
		}
		h.finalize(sess, working)
	}()

	working, err := h.transcoder.EnsureMP3(ctx, sess.AudioPath)
	if err != nil {
		h.log.Warn().Err(err).Int64("user_id", sess.UserID).Msg("audio conversion failed")
		h.replyText(ctx, chatID, fmt.Sprintf("❌ Error converting audio: %v", err))
		return
	}

	meta := audio.Metadata{Title: sess.Title, Artist: sess.Artist}

	if sess.ImagePath != "" {
		raw, err := os.ReadFile(sess.ImagePath)
		if err == nil {
			meta.Cover, err = h.covers.NormalizeCover(ctx, raw, h.coverMax)
		}
		if err != nil {
			h.log.Warn().Err(err).Int64("user_id", sess.UserID).Msg("cover normalization failed")
			h.replyText(ctx, chatID, fmt.Sprintf("❌ Tagging failed: %v", err))
			return
		}
	}

	if err := h.tagger.ApplyTags(working, meta); err != nil {
		h.log.Warn().Err(err).Int64("user_id", sess.UserID).Msg("tagging failed")
		h.replyText(ctx, chatID, fmt.Sprintf("❌ Tagging failed: %v", err))
		return
	}

	data, err := os.ReadFile(working)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", sess.UserID).Msg("reading tagged file failed")
		h.replyText(ctx, chatID, fmt.Sprintf("❌ Tagging failed: %v", err))
		return
	}

	if err := h.out.ReplyDocument(ctx, chatID, documentName(sess), data); err != nil {
		h.log.Error().Err(err).Int64("user_id", sess.UserID).Msg("sending document failed")
		h.replyText(ctx, chatID, fmt.Sprintf("❌ Tagging failed: %v", err))
		return
	}

	h.replyText(ctx, chatID, doneText)
	h.log.Info().Int64("user_id", sess.UserID).Msg("session finished")
}

// finalize releases everything a session holds: the transcoded working
// copy (when distinct from the original), the uploaded audio, and the
// uploaded image. Each path is removed at most once and removal errors
// are swallowed; best-effort cleanup must never mask the pipeline
// result. The session entry is purged last.
func (h *Handler) finalize(sess *model.Session, working string) {
	seen := make(map[string]bool)
	for _, path := range []string{working, sess.AudioPath, sess.ImagePath} {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			h.log.Debug().Err(err).Str("path", path).Msg("cleanup failed")
		}
	}

	h.store.Finalize(sess.UserID)
}

// documentName picks the filename for the returned document: the
// original upload name when the transport provided one, forced to an
// .mp3 extension and sanitized.
func documentName(sess *model.Session) string {
	name := sess.AudioName
	if name == "" {
		name = filepath.Base(sess.AudioPath)
	}
	if !strings.EqualFold(filepath.Ext(name), ".mp3") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".mp3"
	}
	return ioutils.SanitizeFileName(name)
}
