package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/engine"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
	"github.com/use-agent/cookly/share"
)

// ExtractAction prints the extraction result for each URL argument. A single
// URL prints its record (or error object); several URLs print a batch
// summary. The exit status is 1 when any extraction failed.
func ExtractAction(c *cli.Context, cfg *config.Config) error {
	urls := c.Args().Slice()
	if len(urls) == 0 {
		return cli.Exit("extract: at least one URL is required", 2)
	}

	logger := newLogger(c, cfg.Log)
	fetchCfg := cfg.Fetch
	fetchCfg.Timeout = c.Duration("timeout")
	x := extractor.New(engine.NewHTTPEngine(fetchCfg), extractor.WithLogger(logger))

	if len(urls) == 1 {
		res := x.Extract(c.Context, urls[0])
		if !res.OK() {
			if err := writeJSON(c.App.Writer, res, c.Bool("pretty")); err != nil {
				return err
			}
			return cli.Exit("", 1)
		}
		if format := c.String("format"); format != share.FormatJSON {
			out, err := share.Render(res.Recipe, format, "")
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			_, err = fmt.Fprintln(c.App.Writer, out)
			return err
		}
		return writeJSON(c.App.Writer, res, c.Bool("pretty"))
	}

	resp := extractor.Summarize(x.ExtractBatch(c.Context, urls, c.Int("concurrency")))
	if err := writeJSON(c.App.Writer, resp, c.Bool("pretty")); err != nil {
		return err
	}
	if resp.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// ShareAction reads a recipe record from a file (or stdin for "-") and prints
// it in the requested share format.
func ShareAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("share: a recipe JSON file (or - for stdin) is required", 2)
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("share: read recipe: %v", err), 2)
	}

	var rec models.Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return cli.Exit(fmt.Sprintf("share: %s is not a recipe record: %v", path, err), 2)
	}

	out, err := share.Render(&rec, c.String("format"), c.String("base-url"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func newLogger(c *cli.Context, cfg config.LogConfig) *slog.Logger {
	if c.Bool("quiet") {
		cfg.Level = "error"
	}
	return cfg.NewLogger(c.App.ErrWriter)
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
