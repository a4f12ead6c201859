package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samisabik/flipdot/internal/anim"
	"github.com/samisabik/flipdot/internal/config"
	"github.com/samisabik/flipdot/internal/driver"
	"github.com/samisabik/flipdot/internal/hanover"
	"github.com/samisabik/flipdot/internal/link"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		frames     = flag.Int("frames", anim.DefaultWaveOpts.Frames, "frames per precomputed cycle")
		wavelength = flag.Float64("wavelength", anim.DefaultWaveOpts.Wavelength, "wavelength in columns")
		speed      = flag.Float64("speed", anim.DefaultWaveOpts.Speed, "phase advance per frame")
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
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ch, err := link.OpenSerial(cfg.Port, cfg.Baud)
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.Port).Msg("serial open failed")
	}
	defer ch.Close()

	codec, err := hanover.NewCodec(cfg.Address)
	if err != nil {
		log.Fatal().Err(err).Msg("bad sign address")
	}
	sched := driver.NewScheduler(ch, cfg.Baud, cfg.Margin(), log.With().Str("component", "scheduler").Logger())

	// Precompute one full cycle, then drop the sends that would not flip
	// a single dot.
	log.Info().Int("frames", *frames).Msg("precomputing wave frames")
	raw := anim.Wave(cfg.Height, cfg.Width, anim.WaveOpts{
		Frames:     *frames,
		Wavelength: *wavelength,
		Speed:      *speed,
	})
	packets := make([][]byte, len(raw))
	for i, f := range raw {
		packets[i] = codec.EncodeFrame(f)
	}
	packets = anim.Dedupe(packets)
	log.Info().Int("raw", len(raw)).Int("unique", len(packets)).Msg("wave ready")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	blank := func() {
		if err := sched.SendOne(codec.EncodeFrame(hanover.NewFrame(cfg.Height, cfg.Width))); err != nil {
			log.Error().Err(err).Msg("blank failed")
		}
	}

	log.Info().Msg("playing wave (SIGINT to stop)")
	for {
		for _, pkt := range packets {
			select {
			case s := <-sig:
				log.Info().Str("signal", s.String()).Msg("stopping")
				blank()
				return
			default:
			}
			start := time.Now()
			if err := sched.SendOne(pkt); err != nil {
				log.Fatal().Err(err).Msg("send failed")
			}
			if rest := sched.FrameInterval(len(pkt)) - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}
