// Package telegram is the chat transport adapter.
//
// It owns every Telegram-specific concern: long polling, update
// translation, callback acknowledgement, file resolution and download,
// and outbound messages/keyboards/documents. The conversation logic in
// internal/bot stays transport-agnostic behind the Responder and
// FileSource interfaces.
package telegram
