package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coff33ninja/ledmatrix/internal/config"
	"github.com/coff33ninja/ledmatrix/internal/controller"
	"github.com/coff33ninja/ledmatrix/internal/hw"
	"github.com/coff33ninja/ledmatrix/internal/preview"
)

func main() {
	var (
		configPath = flag.String("config", "matrix.yaml", "path to config file")
		width      = flag.Int("width", 0, "matrix width (overrides config)")
		height     = flag.Int("height", 0, "matrix height (overrides config)")
		transport  = flag.String("transport", "", "serial | network | spi | sim (overrides config)")
		port       = flag.String("port", "", "serial port (overrides config)")
		baud       = flag.Int("baud", 0, "serial baud rate (overrides config)")
		host       = flag.String("host", "", "network peer host (overrides config)")
		brightness = flag.Int("brightness", -1, "global brightness 0..255 (overrides config)")
		addr       = flag.String("addr", "", "preview listen address (overrides config)")
		patternStr = flag.String("pattern", "", "pattern to start with (e.g. plasma)")
		colorHex   = flag.String("color", "#ff0000", "pattern color")
		speed      = flag.Int("speed", 50, "pattern speed 0..100")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
		cfg = config.Default()
	}
	applyOverrides(cfg, *width, *height, *transport, *port, *baud, *host, *brightness, *addr)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	tr, err := openTransport(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("transport", cfg.Transport).Msg("cannot open transport")
	}
	disp := hw.NewDispatcher(tr, uint8(cfg.Brightness), log.Logger)
	defer disp.Close()

	prev := preview.NewBroadcaster(log.Logger)
	ctl, err := controller.New(cfg.Width, cfg.Height, disp, prev, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("controller init")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", prev.Handler)
	go func() {
		log.Info().Str("addr", cfg.WebAddr).Msg("preview listening")
		if err := http.ListenAndServe(cfg.WebAddr, mux); err != nil {
			log.Error().Err(err).Msg("preview server stopped")
		}
	}()

	log.Info().
		Int("width", cfg.Width).Int("height", cfg.Height).
		Str("transport", cfg.Transport).Int("brightness", cfg.Brightness).
		Msg("matrix controller up")

	if *patternStr != "" {
		if err := ctl.ApplyPattern(*patternStr, *colorHex, 255, *speed); err != nil {
			log.Error().Err(err).Str("pattern", *patternStr).Msg("initial pattern failed")
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	ctl.StopAnimation()
	_ = ctl.ClearMatrix()
}

func applyOverrides(cfg *config.Config, w, h int, transport, port string, baud int, host string, brightness int, addr string) {
	if w > 0 {
		cfg.Width = w
	}
	if h > 0 {
		cfg.Height = h
	}
	if transport != "" {
		cfg.Transport = transport
	}
	if port != "" {
		cfg.Serial.Port = port
	}
	if baud > 0 {
		cfg.Serial.Baud = baud
	}
	if host != "" {
		cfg.Network.Host = host
	}
	if brightness >= 0 && brightness <= 255 {
		cfg.Brightness = brightness
	}
	if addr != "" {
		cfg.WebAddr = addr
	}
}

func openTransport(cfg *config.Config) (hw.Transport, error) {
	switch cfg.Transport {
	case "serial":
		return hw.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
	case "network":
		tr := hw.NewNetwork(cfg.Network.Host)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := tr.Connect(ctx); err != nil {
			// unreachable peer is reported but not fatal; frames are
			// best-effort once it comes up
			log.Warn().Err(err).Str("host", cfg.Network.Host).Msg("peer not reachable yet")
		}
		return tr, nil
	case "spi":
		return hw.OpenSPI(cfg.SPI.Dev, cfg.Width*cfg.Height)
	default:
		return hw.NewSim(log.Logger), nil
	}
}
