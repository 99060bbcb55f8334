package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"pokersim/internal/config"
	"pokersim/pkg/db"
	"pokersim/pkg/deck"
	"pokersim/pkg/model"
	"pokersim/pkg/report"
	"pokersim/pkg/simulation"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	players     = flag.Int("p", 0, "number of players being dealt in (default from config, 9)")
	simulations = flag.Int("s", 0, "number of simulations to run (default from config, 1000)")
	longFormat  = flag.Bool("l", false, "use long-winded names for the cards")
	output      = flag.String("o", "", "write the results to this CSV file instead of stdout")
	seed        = flag.Int64("seed", 0, "seed for the first trial, every following trial adds one (0 is random)")
	workers     = flag.Int("workers", 0, "number of trials run concurrently (default GOMAXPROCS)")
	configFile  = flag.String("c", "", "path to the YAML config file (default config.yaml)")
	version     = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	if *configFile != "" {
		_ = os.Setenv("POKERSIM_CONFIG_FILE", *configFile)
	}

	cfg := config.Instance()
	applyFlags(&cfg)
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logrus.StandardLogger(), cfg, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}
}

// applyFlags overrides the config with every flag given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Players = *players
		case "s":
			cfg.Simulations = *simulations
		case "l":
			cfg.LongFormat = *longFormat
		case "o":
			cfg.Output = *output
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		}
	})
}

func run(ctx context.Context, logger logrus.FieldLogger, cfg config.Config, stdout *os.File) error {
	sim, err := simulation.New(logger, simulation.Options{
		Players: cfg.Players,
		Trials:  cfg.Simulations,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return err
	}

	format := deck.FormatShort
	if cfg.LongFormat {
		format = deck.FormatLong
	}

	var w report.Writer
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer file.Close()

		w = report.NewCSVWriter(file, format)
	} else {
		w = report.NewTextWriter(stdout, format)
	}

	tally, runErr := sim.Run(ctx, w.Write)
	if err := w.Flush(); err != nil {
		return err
	}

	if runErr != nil && tally.Trials == 0 {
		return runErr
	}

	report.UseColor(stdout)
	if err := summarize(stdout, sim.RunID(), tally); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	if db.Enabled() {
		if err := model.NewRun(sim.RunID(), sim.Options(), tally).Save(ctx); err != nil {
			return err
		}

		logger.WithField("runId", sim.RunID()).Info("saved run")
	}

	return nil
}

func summarize(w io.Writer, runID string, tally *simulation.Tally) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return report.WriteSummary(w, runID, tally)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
