package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rayanhq/tagbot/internal/audio"
	"github.com/rayanhq/tagbot/internal/bot"
	"github.com/rayanhq/tagbot/internal/config"
	ioutils "github.com/rayanhq/tagbot/internal/io"
	"github.com/rayanhq/tagbot/internal/keepalive"
	"github.com/rayanhq/tagbot/internal/session"
	"github.com/rayanhq/tagbot/internal/telegram"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		listenFlag  = flag.String("listen", "", "Keep-alive listen address (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal().Msg("BOT_TOKEN environment variable is required")
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configFlag).Msg("failed to load config")
		}
	}
	if *listenFlag != "" {
		settings.KeepAliveAddress = *listenFlag
	}

	if err := ioutils.EnsureDir(settings.TempDir); err != nil {
		log.Fatal().Err(err).Str("dir", settings.TempDir).Msg("failed to create temp directory")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		cancel()
	}()

	keepalive.Start(settings.KeepAliveAddress, log)

	transport, err := telegram.New(token, telegram.Options{
		TempDir:            settings.TempDir,
		PollTimeoutSeconds: settings.PollTimeoutSeconds,
		Logger:             log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Telegram")
	}
	log.Info().Str("username", transport.Username()).Msg("bot authenticated")

	handler := bot.NewHandler(bot.Config{
		Store:     session.NewStore(),
		Files:     transport,
		Responder: transport,
		Transcoder: &audio.Transcoder{
			FFmpeg:  settings.FFmpegBinary,
			Bitrate: settings.MP3Bitrate,
		},
		Tagger:            audio.NewTagger(),
		Covers:            ioutils.NewCoverService(settings.CoverJPEGQuality),
		CoverMaxDimension: settings.CoverMaxDimension,
		Logger:            log,
	})

	log.Info().Msg("bot is polling")
	if err := transport.Run(ctx, handler, settings.MaxConcurrentHandlers); err != nil {
		log.Fatal().Err(err).Msg("polling loop failed")
	}
}
