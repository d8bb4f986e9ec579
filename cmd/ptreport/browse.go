package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/privacytests/ptreport/internal/browse"
	"github.com/privacytests/ptreport/pkg/render"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Explore results files (default: the latest) interactively in the terminal",
		ArgsUsage: "[results.json...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()

			files, err := s.inputFiles(cmd)
			if err != nil {
				return err
			}
			rep, err := s.build(files)
			if err != nil {
				return err
			}
			return browse.Run(ctx, rep.Table, render.ThemeByName(s.cfg.ThemeName()))
		},
	}
}
