// Package audio provides the two media operations of the tagging
// pipeline: format normalization and ID3 tag merging.
//
// # Format Normalization
//
// The Transcoder guarantees the pipeline works on MP3. Valid MP3 passes
// through untouched; anything else is converted with ffmpeg:
//
//	t := &audio.Transcoder{FFmpeg: "ffmpeg", Bitrate: "192k"}
//	working, err := t.EnsureMP3(ctx, uploadPath)
//
// When ffmpeg is missing and the upload is not MP3, EnsureMP3 returns
// ErrUnsupportedFormat, which callers surface to the user.
//
// # Tag Merging
//
// The Tagger applies user-chosen title, artist, and cover art while
// explicitly preserving values the user did not set:
//
//	tagger := audio.NewTagger()
//	err := tagger.ApplyTags(working, audio.Metadata{Title: "Midnight"})
package audio
