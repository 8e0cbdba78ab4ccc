package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"heuristicheck/internal/adapters/browser"
	"heuristicheck/internal/audit"
	"heuristicheck/internal/config"
	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
	"heuristicheck/internal/report"
)

type auditOptions struct {
	format    string
	out       string
	browser   bool
	threshold float64
	disable   string
	config    string
	minScore  int
}

func (o *auditOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.format, "format", "text", "output format: text, json or yaml")
	fs.StringVar(&o.out, "out", "", "write the report to this file instead of stdout")
	fs.BoolVar(&o.browser, "browser", false, "render the page in headless Chrome")
	fs.Float64Var(&o.threshold, "threshold", audit.DefaultContrastThreshold, "minimum contrast ratio")
	fs.StringVar(&o.disable, "disable", "", "comma separated rule ids to skip, e.g. 2,10")
	fs.StringVar(&o.config, "config", os.Getenv("CONFIG_FILE"), "YAML file with rule toggles")
	fs.IntVar(&o.minScore, "min-score", 0, "exit with status 3 when the score is below this value")
}

// settings merges the config file toggles with -disable; -disable wins.
func (o *auditOptions) settings() (domain.Settings, error) {
	out := domain.Settings{}
	if o.config != "" {
		f, err := config.LoadFile(o.config)
		if err != nil {
			return nil, err
		}
		for id, enabled := range f.Rules {
			out[domain.RuleID(id)] = enabled
		}
	}
	for _, part := range strings.Split(o.disable, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("-disable: %q is not a rule id", part)
		}
		out[domain.RuleID(n)] = false
	}
	for id := range out {
		if !id.IsValid() {
			return nil, fmt.Errorf("unknown rule id %d", id)
		}
	}
	return out, nil
}

var errLowScore = errors.New("score below minimum")

func runAudit(ctx context.Context, args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts auditOptions
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "audit: exactly one file or url is required")
		return 2
	}
	if err := auditOnce(ctx, fs.Arg(0), opts, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "audit: %v\n", err)
		if errors.Is(err, errLowScore) {
			return 3
		}
		return 1
	}
	return 0
}

func auditOnce(ctx context.Context, target string, opts auditOptions, stdout io.Writer, logger *slog.Logger) error {
	settings, err := opts.settings()
	if err != nil {
		return err
	}
	doc, err := load(ctx, target, opts.browser, logger)
	if err != nil {
		return err
	}
	engine := audit.NewEngine(audit.WithContrastThreshold(opts.threshold), audit.WithLogger(logger))
	doc.ClearOverlays()
	findings := engine.Run(ctx, doc, settings)
	rep := report.New(doc.URL, findings, doc.MarkedElements(), time.Now().UTC())

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if opts.format == "text" {
		report.PrintSummary(w, rep)
	} else if err := report.Write(w, rep, opts.format); err != nil {
		return err
	}
	if rep.Score < opts.minScore {
		return fmt.Errorf("%w: %d < %d", errLowScore, rep.Score, opts.minScore)
	}
	return nil
}

func load(ctx context.Context, target string, render bool, logger *slog.Logger) (*dom.Document, error) {
	remote := strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
	if !render {
		if remote {
			return browser.StaticFetcher{}.Capture(ctx, target)
		}
		return browser.LoadFile(target)
	}
	url := target
	if !remote {
		local, err := browser.LoadFile(target)
		if err != nil {
			return nil, err
		}
		url = local.URL
	}
	c := browser.NewCapturer(ctx, browser.Options{Logger: logger})
	defer c.Close()
	return c.Capture(ctx, url)
}
