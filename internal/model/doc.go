// Package model defines the core data structures shared across tagbot:
// the per-user Session record and the inbound event types produced by
// the chat transport.
//
// # Session
//
// Session tracks one user's conversation: the uploaded audio, the
// optional cover image, pending title/artist values, and which input
// (if any) the bot is waiting for:
//
//	sess := store.Start(userID, chatID, "/tmp/tagbot-1.ogg", "song.ogg")
//	sess.Awaiting = model.AwaitTitle
//
// # Events
//
// Events describe what arrived from the transport, independent of wire
// format. The conversation handler consumes them with a type switch:
//
//	switch e := ev.(type) {
//	case model.AudioUploaded:  // new session
//	case model.TextMessage:    // title or artist input
//	case model.ButtonPressed:  // menu selection
//	}
package model
