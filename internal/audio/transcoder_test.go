package audio

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestProbeMP3_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.ogg")
	if err := os.WriteFile(path, []byte("definitely not mpeg audio data, not even close"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if ProbeMP3(path) {
		t.Error("ProbeMP3() = true for garbage data")
	}
}

func TestProbeMP3_MissingFile(t *testing.T) {
	if ProbeMP3(filepath.Join(t.TempDir(), "missing.mp3")) {
		t.Error("ProbeMP3() = true for a missing file")
	}
}

func TestEnsureMP3_PassThrough(t *testing.T) {
	probeMP3 = func(string) bool { return true }
	defer func() { probeMP3 = ProbeMP3 }()

	trans := &Transcoder{}
	src := filepath.Join(t.TempDir(), "already.mp3")

	got, err := trans.EnsureMP3(context.Background(), src)
	if err != nil {
		t.Fatalf("EnsureMP3() error = %v", err)
	}
	if got != src {
		t.Errorf("EnsureMP3() = %q, want the input path %q unchanged", got, src)
	}
}

func TestEnsureMP3_BackendUnavailable(t *testing.T) {
	probeMP3 = func(string) bool { return false }
	defer func() { probeMP3 = ProbeMP3 }()

	trans := &Transcoder{FFmpeg: "tagbot-test-no-such-binary"}

	_, err := trans.EnsureMP3(context.Background(), "/tmp/whatever.ogg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("EnsureMP3() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEnsureMP3_ConvertsViaBackend(t *testing.T) {
	probeMP3 = func(string) bool { return false }
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
		return cmd
	}
	defer func() {
		probeMP3 = ProbeMP3
		commandContext = exec.CommandContext
	}()

	// The test binary itself stands in for ffmpeg so LookPath succeeds.
	trans := &Transcoder{FFmpeg: os.Args[0], Bitrate: "192k"}
	src := filepath.Join(t.TempDir(), "voice.ogg")

	got, err := trans.EnsureMP3(context.Background(), src)
	if err != nil {
		t.Fatalf("EnsureMP3() error = %v", err)
	}
	if got != src+".mp3" {
		t.Errorf("EnsureMP3() = %q, want %q", got, src+".mp3")
	}
}

func TestEnsureMP3_BackendFailure(t *testing.T) {
	probeMP3 = func(string) bool { return false }
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_PROCESS_FAIL=1")
		return cmd
	}
	defer func() {
		probeMP3 = ProbeMP3
		commandContext = exec.CommandContext
	}()

	trans := &Transcoder{FFmpeg: os.Args[0]}

	_, err := trans.EnsureMP3(context.Background(), "/tmp/voice.ogg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("EnsureMP3() error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "simulated conversion error") {
		t.Errorf("EnsureMP3() error = %v, want backend output folded in", err)
	}
}

// TestHelperProcess is not a real test; it is the fake ffmpeg child
// process spawned by the tests above.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if os.Getenv("HELPER_PROCESS_FAIL") == "1" {
		os.Stderr.WriteString("simulated conversion error")
		os.Exit(1)
	}
	os.Exit(0)
}
