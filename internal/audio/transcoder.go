package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// ErrUnsupportedFormat is returned when an upload is not MP3 and cannot
// be converted, either because ffmpeg is unavailable or because the
// conversion itself failed. It is reported to the user, never fatal.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// commandContext is swapped out in tests.
var commandContext = exec.CommandContext

// probeMP3 is swapped out in tests.
var probeMP3 = ProbeMP3

// ProbeMP3 reports whether the file at path contains a decodable MPEG
// audio stream.
//
// The probe is explicit and side-effect free: it decodes the stream head
// and returns false on any error rather than treating decode failures as
// control flow. ID3 tags at the start of the file are skipped by the
// decoder, so already-tagged files probe correctly.
func ProbeMP3(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	_, err = mp3.NewDecoder(f)
	return err == nil
}

// Transcoder ensures uploaded audio is MP3, converting via ffmpeg when
// it is not.
//
// Example:
//
//	t := &audio.Transcoder{FFmpeg: "ffmpeg", Bitrate: "192k"}
//	working, err := t.EnsureMP3(ctx, "/tmp/tagbot-1.ogg")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // tell the user, don't crash
//	}
type Transcoder struct {
	// FFmpeg is the binary name or path. Empty means "ffmpeg".
	FFmpeg string

	// Bitrate is the target bitrate for conversions, e.g. "192k".
	// Empty means "192k".
	Bitrate string
}

// EnsureMP3 returns a path to MP3 audio for the given source file.
//
// If the source already probes as MP3 the same path is returned
// unchanged, with no copy. Otherwise the file is converted to a new
// file at path + ".mp3". The source file is never modified.
//
// Returns ErrUnsupportedFormat (wrapped with detail) when ffmpeg is not
// on PATH or the conversion fails.
func (t *Transcoder) EnsureMP3(ctx context.Context, path string) (string, error) {
	if probeMP3(path) {
		return path, nil
	}

	bin := t.FFmpeg
	if bin == "" {
		bin = "ffmpeg"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("%w: audio is not MP3 and %s is not available", ErrUnsupportedFormat, bin)
	}

	bitrate := t.Bitrate
	if bitrate == "" {
		bitrate = "192k"
	}

	dest := path + ".mp3"
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		dest,
	}
	cmd := commandContext(ctx, bin, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: ffmpeg: %v: %s", ErrUnsupportedFormat, err, strings.TrimSpace(string(output)))
	}

	return dest, nil
}
