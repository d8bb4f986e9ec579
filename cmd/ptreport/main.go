package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/privacytests/ptreport/internal/config"
	"github.com/privacytests/ptreport/internal/locate"
	"github.com/privacytests/ptreport/internal/logger"
	"github.com/privacytests/ptreport/internal/version"
	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/report"
	"github.com/privacytests/ptreport/pkg/results"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log := logger.New(os.Stderr, false)
		log.Error("ptreport failed", zap.Error(err))
		_ = log.Sync()
		cancel()
		os.Exit(1) //nolint:gocritic // cancel already called
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:           "ptreport",
		Usage:          "Render browser privacy test results as a comparison table",
		Version:        version.String(),
		DefaultCommand: "render",
		Writer:         stdout,
		ErrWriter:      stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "results-dir",
				Usage: "directory holding one subdirectory of raw results per run",
			},
			&cli.StringFlag{
				Name:  "sections",
				Usage: "category index YAML (default: built in)",
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "locale used to sort browsers and tests",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "terminal theme: default, orca, mono",
			},
			&cli.BoolFlag{
				Name:  "aggregate",
				Usage: "fold repeated trials of a configuration into one column",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log debug messages",
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			browseCommand(),
		},
	}
}

// session is the state shared by every command: resolved configuration and
// the logger built from it.
type session struct {
	cfg *config.Resolved
	log *zap.Logger
}

func newSession(cmd *cli.Command) (*session, error) {
	flags := config.Flags{
		ResultsDir:   cmd.String("results-dir"),
		SectionsFile: cmd.String("sections"),
		Locale:       cmd.String("locale"),
		Theme:        cmd.String("theme"),
		Aggregate:    cmd.Bool("aggregate"),
		AggregateSet: cmd.IsSet("aggregate"),
		Debug:        cmd.Bool("debug"),
		DebugSet:     cmd.IsSet("debug"),
	}
	if cmd.IsSet("no-preview") {
		flags.Preview, flags.PreviewSet = !cmd.Bool("no-preview"), true
	}
	if cmd.IsSet("chrome") {
		flags.ChromePath = cmd.String("chrome")
	}
	cfg, err := config.Resolve(flags)
	if err != nil {
		return nil, err
	}
	log := logger.New(cmd.Root().ErrWriter, cfg.Debug)
	log.Debug("configuration resolved",
		zap.String("file", cfg.File),
		zap.Any("sources", cfg.Sources),
		zap.String("results_dir", cfg.ResultsDir),
		zap.Bool("aggregate", cfg.Aggregate),
	)
	return &session{cfg: cfg, log: log}, nil
}

// inputFiles returns the files named on the command line, or the latest
// results file when none are.
func (s *session) inputFiles(cmd *cli.Command) ([]string, error) {
	if files := cmd.Args().Slice(); len(files) > 0 {
		return files, nil
	}
	latest, err := locate.LatestResultsFile(s.cfg.ResultsDir)
	if err != nil {
		return nil, err
	}
	s.log.Debug("using latest results file", zap.String("file", latest))
	return []string{latest}, nil
}

// build reads the batches and assembles the report.
func (s *session) build(files []string) (*report.Report, error) {
	s.log.Info("Reading from raw results files", zap.Strings("files", files))
	batches, err := results.ReadFiles(files)
	if err != nil {
		return nil, err
	}
	descriptors, err := category.Load(s.cfg.SectionsFile)
	if err != nil {
		return nil, err
	}
	rep, err := report.Build(batches, descriptors, report.Options{
		Aggregate: s.cfg.Aggregate,
		Locale:    s.cfg.LocaleTag(),
	})
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	s.log.Debug("report built",
		zap.String("title", rep.Table.Title.Title),
		zap.Int("columns", len(rep.Table.Headers)),
		zap.Int("rows", len(rep.Table.Body)),
	)
	return rep, nil
}
