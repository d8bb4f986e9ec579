package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/privacytests/ptreport/internal/launch"
	"github.com/privacytests/ptreport/internal/locate"
	"github.com/privacytests/ptreport/internal/preview"
	"github.com/privacytests/ptreport/pkg/render"
	"github.com/privacytests/ptreport/pkg/report"
)

const pageTitle = "PrivacyTests.org"

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render results files (default: the latest) as a web page or in the terminal",
		ArgsUsage: "[results.json...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "live",
				Usage: "do not open the page in a browser",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "html, terminal, text, json, or auto (terminal when stdout is a terminal, else text)",
				Value: "html",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "write output to this file instead of the default location or stdout",
			},
			&cli.BoolFlag{
				Name:  "no-preview",
				Usage: "skip the preview image",
			},
			&cli.StringFlag{
				Name:  "chrome",
				Usage: "Chrome binary used for the preview image",
			},
		},
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

			stdout := cmd.Root().Writer
			format := cmd.String("format")
			if format == "auto" {
				format = "text"
				if isTerminal(stdout) {
					format = "terminal"
				}
			}
			if format == "html" {
				return s.writePages(ctx, rep, files[0], cmd.String("out"), cmd.Bool("live"))
			}

			r, err := s.renderer(format, stdout)
			if err != nil {
				return err
			}
			out, err := r.Render(rep)
			if err != nil {
				return err
			}
			if path := cmd.String("out"); path != "" {
				return s.writeFile(path, out)
			}
			_, err = io.WriteString(stdout, out)
			return err
		},
	}
}

func (s *session) renderer(format string, stdout io.Writer) (render.Renderer, error) {
	switch format {
	case "terminal":
		return render.NewTerminal(render.ThemeByName(s.cfg.ThemeName()), terminalWidth(stdout)), nil
	case "text":
		return render.NewText(), nil
	case "json":
		return render.NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// writePages writes the dated page next to the first results file and
// results_dir/latest.html, then the preview image, then opens the page.
// With out set, only that one page is written.
func (s *session) writePages(ctx context.Context, rep *report.Report, firstResults, out string, live bool) error {
	outputs := locate.OutputsFor(s.cfg.ResultsDir, firstResults)
	issue, err := locate.ReadIssueNumber(s.cfg.IssueNumberFile)
	if err != nil {
		return err
	}
	logos := render.NewLogoCache(s.cfg.LogoDirs...)

	pages := []string{outputs.Page, outputs.Latest}
	if out != "" {
		pages = []string{out}
	}
	for _, page := range pages {
		h, err := render.NewHTML(render.HTMLOptions{
			PageTitle:    pageTitle,
			RepoURL:      s.cfg.RepoURL,
			RawDataFile:  locate.Link(page, outputs.Results),
			PreviewImage: locate.Link(page, outputs.Preview),
			IssueNumber:  issue,
			Stylesheets:  s.cfg.Stylesheets,
		}, logos)
		if err != nil {
			return err
		}
		html, err := h.Render(rep)
		if err != nil {
			return err
		}
		if err := s.writeFile(page, html); err != nil {
			return err
		}
	}
	if out != "" {
		return nil
	}

	if s.cfg.Preview {
		opts := preview.DefaultOptions()
		opts.ChromePath = s.cfg.ChromePath
		if err := preview.Capture(ctx, launch.FileURL(outputs.Page), outputs.Preview, opts); err != nil {
			s.log.Warn("preview image not written", zap.Error(err))
		} else {
			s.log.Info("Wrote out", zap.String("file", launch.FileURL(outputs.Preview)))
		}
	}

	if !live {
		if err := launch.Open(ctx, outputs.Page); err != nil {
			s.log.Warn("could not open page", zap.Error(err))
		}
	}
	return nil
}

func (s *session) writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // pages are published
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.log.Info("Wrote out", zap.String("file", launch.FileURL(path)))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
