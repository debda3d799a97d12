package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rayanhq/tagbot/internal/bot"
	httpx "github.com/rayanhq/tagbot/internal/http"
	ioutils "github.com/rayanhq/tagbot/internal/io"
	"github.com/rayanhq/tagbot/internal/model"
)

// Transport adapts the Telegram Bot API to the bot's event model.
//
// It long-polls for updates, translates them into model events, and
// implements the Responder and FileSource interfaces the conversation
// handler consumes. The handler never sees Telegram types.
type Transport struct {
	api     *tgbotapi.BotAPI
	client  *httpx.Client
	tempDir string
	timeout int
	log     zerolog.Logger
}

// Options configures a Transport.
type Options struct {
	// TempDir is where fetched uploads are materialized.
	TempDir string

	// PollTimeoutSeconds is the long-poll timeout. Zero means 30.
	PollTimeoutSeconds int

	Logger zerolog.Logger
}

// New authenticates against the Bot API with token and returns a
// Transport ready to run.
func New(token string, opts Options) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	timeout := opts.PollTimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Transport{
		api:     api,
		client:  httpx.NewClient(),
		tempDir: opts.TempDir,
		timeout: timeout,
		log:     opts.Logger,
	}, nil
}

// Username returns the authenticated bot account name.
func (t *Transport) Username() string {
	return t.api.Self.UserName
}

// Run polls for updates until ctx is cancelled, dispatching each
// translated event to handler on its own goroutine, at most workers at
// a time. Slow pipelines for one user therefore never stall polling or
// other users' events.
func (t *Transport) Run(ctx context.Context, handler *bot.Handler, workers int) error {
	if workers <= 0 {
		workers = 8
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = t.timeout
	updates := t.api.GetUpdatesChan(cfg)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return g.Wait()
		case update, ok := <-updates:
			if !ok {
				return g.Wait()
			}
			ev := t.translate(update)
			if ev == nil {
				continue
			}
			g.Go(func() error {
				handler.Handle(ctx, ev)
				return nil
			})
		}
	}
}

// translate maps one Telegram update onto a model event, or nil for
// updates the bot does not care about.
func (t *Transport) translate(update tgbotapi.Update) model.Event {
	if q := update.CallbackQuery; q != nil {
		// Stop the client-side spinner; failures here are cosmetic.
		if _, err := t.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
			t.log.Debug().Err(err).Msg("answering callback query failed")
		}
		if q.Message == nil {
			return nil
		}
		return model.ButtonPressed{
			UserID: q.From.ID,
			ChatID: q.Message.Chat.ID,
			Action: q.Data,
		}
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}

	switch {
	case msg.IsCommand():
		if msg.Command() == "start" {
			return model.CommandStart{UserID: msg.From.ID, ChatID: msg.Chat.ID}
		}
		return nil
	case msg.Audio != nil:
		return model.AudioUploaded{
			UserID: msg.From.ID,
			ChatID: msg.Chat.ID,
			File:   model.FileRef{ID: msg.Audio.FileID, Name: msg.Audio.FileName},
		}
	case len(msg.Photo) > 0:
		// Telegram sends several resolutions; the last is the largest.
		photo := msg.Photo[len(msg.Photo)-1]
		return model.PhotoUploaded{
			UserID: msg.From.ID,
			ChatID: msg.Chat.ID,
			File:   model.FileRef{ID: photo.FileID},
		}
	case msg.Text != "":
		return model.TextMessage{UserID: msg.From.ID, ChatID: msg.Chat.ID, Text: msg.Text}
	default:
		return nil
	}
}

// Fetch implements bot.FileSource: it resolves ref against the Bot API
// and streams the content into a fresh temporary file ending in suffix.
func (t *Transport) Fetch(ctx context.Context, ref model.FileRef, suffix string) (string, error) {
	file, err := t.api.GetFile(tgbotapi.FileConfig{FileID: ref.ID})
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", ref.ID, err)
	}

	path, err := ioutils.TempFile(t.tempDir, "tagbot-*"+suffix)
	if err != nil {
		return "", err
	}

	if err := t.client.DownloadFile(ctx, file.Link(t.api.Token), path); err != nil {
		return "", fmt.Errorf("download file %s: %w", ref.ID, err)
	}
	return path, nil
}

// ReplyText implements bot.Responder.
func (t *Transport) ReplyText(ctx context.Context, chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// ReplyMenu implements bot.Responder: one inline keyboard row per
// button, matching the original one-column layout.
func (t *Transport) ReplyMenu(ctx context.Context, chatID int64, text string, buttons []model.Button) error {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action),
		))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err := t.api.Send(msg)
	return err
}

// ReplyDocument implements bot.Responder.
func (t *Transport) ReplyDocument(ctx context.Context, chatID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	_, err := t.api.Send(doc)
	return err
}
