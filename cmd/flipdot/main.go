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
	"github.com/samisabik/flipdot/internal/input"
	"github.com/samisabik/flipdot/internal/link"
	"github.com/samisabik/flipdot/internal/text"
	"github.com/samisabik/flipdot/internal/words"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		port       = flag.String("port", "", "serial port (overrides config)")
		baud       = flag.Int("baud", 0, "baud rate (overrides config)")
		address    = flag.Int("address", -1, "sign address 0-15 (overrides config)")
		fontPath   = flag.String("font", "", "TTF font file; empty uses the builtin face")
		fontSize   = flag.Float64("font-size", 0, "font size in points (overrides config)")
		source     = flag.String("input", "gpio", "trigger source: gpio | stdin")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config (file over defaults, flags over file) ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	} else {
		cfg = c
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *baud > 0 {
		cfg.Baud = *baud
	}
	if *address >= 0 {
		cfg.Address = *address
	}
	if *fontPath != "" {
		cfg.Font.Path = *fontPath
	}
	if *fontSize > 0 {
		cfg.Font.Size = *fontSize
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// ---- Rasterizer ----
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

	// ---- Serial link & sign ----
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

	// ---- Trigger source ----
	var src input.Source
	switch *source {
	case "gpio":
		src, err = input.NewButton(cfg.Input.Chip, cfg.Input.Line, cfg.Debounce())
		if err != nil {
			log.Fatal().Err(err).Str("chip", cfg.Input.Chip).Int("line", cfg.Input.Line).Msg("gpio request failed")
		}
	case "stdin":
		src = input.NewLines(os.Stdin)
	default:
		log.Fatal().Str("input", *source).Msg("unknown trigger source")
	}
	defer src.Close()

	// ---- First word, then one per trigger ----
	show := func(word string, animate bool) {
		frame, err := renderer.Render(word)
		if err != nil {
			log.Error().Err(err).Str("word", word).Msg("render failed")
			return
		}
		if err := sign.Display(frame, animate); err != nil {
			log.Fatal().Err(err).Str("word", word).Msg("display failed")
		}
		log.Info().Str("word", word).Bool("animate", animate).Msg("displayed")
	}
	show(words.Random(), false)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	log.Info().Str("port", cfg.Port).Str("input", *source).Msg("listening for triggers")

	for {
		select {
		case _, ok := <-src.Events():
			if !ok {
				log.Info().Msg("trigger source closed")
				return
			}
			show(words.Random(), true)
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}
