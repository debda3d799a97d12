// Package bot implements the conversation state machine and the tagging
// pipeline behind it.
//
// # Conversation
//
// Per user, the flow is: audio upload creates a session and shows an
// action menu; selecting "set image/title/artist" records which input is
// awaited and prompts for it; the matching input clears the expectation,
// stores the value, and re-shows the menu. Inputs that nothing is
// waiting for are dropped silently. "Finish" runs the pipeline:
//
//	idle -> has_audio -> awaiting_{image,title,artist} -> has_audio
//	                  -> finalizing -> done
//
// After finishing, every further button press gets a fixed "already
// processed" notice until the user uploads new audio.
//
// # Pipeline
//
// Finish normalizes the upload to MP3, merges title/artist/cover into
// the ID3 tag preserving untouched values, sends the tagged file back as
// a document, and finally deletes every temporary file the session
// referenced and purges the session. The finalizer runs on failure
// paths too; no path is deleted twice and no failure crosses the
// pipeline boundary.
//
// The Handler depends only on the Responder, FileSource, and Transcoder
// interfaces, so tests drive full conversations with in-memory fakes.
package bot
