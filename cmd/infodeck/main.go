package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"infodeck/internal/config"
	"infodeck/internal/countries"
	"infodeck/internal/course"
	"infodeck/internal/logging"
	"infodeck/internal/telemetry"
	"infodeck/internal/ui"
	"infodeck/internal/weather"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// options holds the parsed command-line flags.
type options struct {
	envFile      string
	logFile      string
	mode         string
	printCourses bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.envFile, "env", "", "dotenv file to load (default .env when present)")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides "+config.EnvLogFile+")")
	flag.StringVar(&opts.mode, "mode", "lookup", "initial view: lookup or courses")
	flag.BoolVar(&opts.printCourses, "print-courses", false, "print the course catalog to stdout and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: infodeck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Look up countries and their capital's weather, or browse the course catalog.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func initialMode(s string) (ui.AppMode, error) {
	switch s {
	case "lookup", "":
		return ui.ModeLookup, nil
	case "courses":
		return ui.ModeCourses, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want lookup or courses)", s)
	}
}

func run(opts options) error {
	catalog := course.Catalog()
	if opts.printCourses {
		fmt.Println(course.RenderAll(catalog))
		return nil
	}

	mode, err := initialMode(opts.mode)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	provider, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	if cfg.WeatherAPIKey == "" {
		logger.Warn().Msgf("%s is not set; weather lookups will fail", config.EnvWeatherKey)
	}
	logger.Info().Stringer("mode", mode).Dur("timeout", cfg.HTTPTimeout).Msg("starting")

	app := ui.NewAppModel(ui.Deps{
		Countries: countries.NewClient(cfg.CountriesBaseURL, cfg.HTTPTimeout, logger),
		Weather:   weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.HTTPTimeout, logger),
		Courses:   catalog,
		Logger:    logger,
	})
	app.Mode = mode

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "infodeck: %v\n", err)
		os.Exit(1)
	}
}
