package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/share"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := newApp(cfg, os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "cookly-cli",
		Usage:     "extract recipes from web pages and share them",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "extract recipes from one or more URLs",
				ArgsUsage: "<url> [url...]",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "per-page fetch timeout",
						Value: cfg.Fetch.Timeout,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format for a single URL: json, text, markdown or html",
						Value: share.FormatJSON,
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "indent JSON output",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "parallel extractions when several URLs are given",
						Value: cfg.Batch.Concurrency,
					},
				},
				Action: func(c *cli.Context) error { return ExtractAction(c, cfg) },
			},
			{
				Name:      "share",
				Usage:     "render a recipe JSON file as a share link, text, markdown or html",
				ArgsUsage: "<file.json|->",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "base URL for import links",
						Value: cfg.Share.BaseURL,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "url, text, markdown, html or json",
						Value: share.FormatURL,
					},
				},
				Action: ShareAction,
			},
		},
	}
}
