package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
//
// The bot token is deliberately not part of Settings: it is a secret and
// is read from the BOT_TOKEN environment variable at startup.
type Settings struct {
	// TempDir is where uploaded audio and images are materialized.
	TempDir string `json:"temp_dir"`

	// FFmpegBinary is the name or path of the ffmpeg binary used for
	// audio conversion. If it is not found on PATH, non-MP3 uploads are
	// rejected as unsupported.
	FFmpegBinary string `json:"ffmpeg_binary"`

	// MP3Bitrate is the target bitrate for converted audio, e.g. "192k".
	MP3Bitrate string `json:"mp3_bitrate"`

	// CoverMaxDimension bounds both dimensions of the embedded cover
	// art. Larger images are downscaled preserving aspect ratio;
	// smaller images are never upscaled.
	CoverMaxDimension int `json:"cover_max_dimension"`

	// CoverJPEGQuality is the JPEG quality (1-100) used when re-encoding
	// cover art.
	CoverJPEGQuality int `json:"cover_jpeg_quality"`

	// MaxConcurrentHandlers bounds how many inbound events are processed
	// at once across all users.
	MaxConcurrentHandlers int `json:"max_concurrent_handlers"`

	// PollTimeoutSeconds is the long-poll timeout for the transport.
	PollTimeoutSeconds int `json:"poll_timeout_seconds"`

	// KeepAliveAddress is the listen address of the liveness endpoint.
	KeepAliveAddress string `json:"keep_alive_address"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		TempDir:               filepath.Join(os.TempDir(), "tagbot"),
		FFmpegBinary:          "ffmpeg",
		MP3Bitrate:            "192k",
		CoverMaxDimension:     1000,
		CoverJPEGQuality:      90,
		MaxConcurrentHandlers: 8,
		PollTimeoutSeconds:    30,
		KeepAliveAddress:      ":8080",
	}
}

// Load reads settings from a JSON file.
//
// If the file does not exist, defaults are returned without error so a
// fresh deployment needs no config file at all.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
