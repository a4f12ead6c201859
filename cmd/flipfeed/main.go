package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samisabik/flipdot/internal/config"
	"github.com/samisabik/flipdot/internal/driver"
	"github.com/samisabik/flipdot/internal/feed"
	"github.com/samisabik/flipdot/internal/link"
	"github.com/samisabik/flipdot/internal/text"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		url        = flag.String("url", "", "websocket feed URL (overrides config)")
		prefix     = flag.String("prefix", "", "text prepended to every value (overrides config)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	} else {
		cfg = c
	}
	if *url != "" {
		cfg.Feed.URL = *url
	}
	if *prefix != "" {
		cfg.Feed.Prefix = *prefix
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Feed.URL == "" {
		log.Fatal().Msg("no feed URL configured")
	}

	var renderer text.Renderer
	if cfg.Font.Path != "" {
		r, err := text.NewTTF(cfg.Font.Path, cfg.Font.Size, cfg.Height)
		if err != nil {
			log.Fatal().Err(err).Str("font", cfg.Font.Path).Msg("font load failed")
		}
		renderer = r
	} else {
		renderer = text.NewBuiltin(cfg.Height)
	}

	ch, err := link.OpenSerial(cfg.Port, cfg.Baud)
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.Port).Msg("serial open failed")
	}
	defer ch.Close()

	sign, err := driver.New(ch, &driver.Opts{
		Address:    cfg.Address,
		Height:     cfg.Height,
		Width:      cfg.Width,
		Baud:       cfg.Baud,
		Margin:     cfg.Margin(),
		ScrollStep: cfg.ScrollStep,
	}, log.With().Str("component", "driver").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("driver init failed")
	}

	client, err := feed.Dial(cfg.Feed.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("feed connect failed")
	}
	defer client.Close()
	log.Info().Str("url", cfg.Feed.URL).Msg("subscribed")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case value, ok := <-client.Updates():
			if !ok {
				log.Warn().Msg("feed closed")
				return
			}
			line := cfg.Feed.Prefix + value
			frame, err := renderer.Render(line)
			if err != nil {
				log.Error().Err(err).Str("text", line).Msg("render failed")
				continue
			}
			if err := sign.Display(frame, false); err != nil {
				log.Fatal().Err(err).Str("text", line).Msg("display failed")
			}
			log.Info().Str("text", line).Msg("displayed")
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}
