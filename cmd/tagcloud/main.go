// Copyright 2026 The TagCloud Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the tagcloud generator CLI.

tagcloud reads a plain-text file, counts how often each word occurs, picks
the N most frequent words, and writes an HTML page where each word's font
size scales with its frequency.

# Usage

Fully non-interactive:

	tagcloud -in book.txt -out cloud.html -n 50

Any of -in, -out, or -n left out is prompted for on the console:

	tagcloud
	Please enter the name of input file:
	Please enter name of output file:
	Enter desired number of words:

# Configuration

Runtime configuration is managed through a TOML file that supports the
separator set, the font-size range, and CLI defaults:

	[cloud]
	min_font_size = 11
	max_font_size = 47
	stylesheet_url = "..."

	[tokens]
	separators = " \t\n\r,.-;*`/\"@#$%&()[]"

	[cli]
	default_count = 100
	preview = false

	[report]
	enabled = false

The config file is automatically created with defaults if it doesn't exist.

# Behavior on bad input

A word count that does not parse, is negative, or is absurdly large never
aborts the run: the value is clamped (unparsable input counts as zero) and a
warning is logged. A missing input file aborts before any processing; an
output file that cannot be created skips the generation pipeline entirely.
A read failure partway through the input stops counting and renders whatever
was accumulated up to that point.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tagforge/tagcloud/internal/cli"
	"github.com/tagforge/tagcloud/internal/logger"
	"github.com/tagforge/tagcloud/internal/report"
	"github.com/tagforge/tagcloud/pkg/cloud"
	"github.com/tagforge/tagcloud/pkg/config"
	"github.com/tagforge/tagcloud/pkg/freq"
	"github.com/tagforge/tagcloud/pkg/tokenize"
)

const (
	Version = "1.0.0"
	AppName = "tagcloud"
	gh      = "https://github.com/tagforge/tagcloud"
)

func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	inPath := flag.String("in", "", "Input text file (prompted for when omitted)")
	outPath := flag.String("out", "", "Output HTML file (prompted for when omitted)")
	wordCount := flag.Int64("n", -1, "Number of words to render (prompted for when omitted)")
	preview := flag.Bool("preview", false, "Print the selection as a console table after generating")
	sidecar := flag.Bool("report", false, "Write a msgpack run summary next to the HTML output")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	prompter := cli.NewPrompter()

	input := *inPath
	if input == "" {
		input, err = prompter.InputPath()
		if err != nil {
			os.Exit(1)
		}
	}

	output := *outPath
	if output == "" {
		output, err = prompter.OutputPath()
		if err != nil {
			os.Exit(1)
		}
	}

	var n int
	if *wordCount == -1 {
		n = prompter.WordCount(cfg.CLI.DefaultCount)
	} else {
		n = cli.ClampCount(*wordCount)
	}

	opts := runOptions{
		count:     n,
		preview:   *preview || cfg.CLI.Preview,
		report:    *sidecar || cfg.Report.Enabled,
		requested: n,
	}
	generate(cfg, input, output, opts)
}

type runOptions struct {
	count     int
	requested int
	preview   bool
	report    bool
}

// generate runs the whole pipeline for one input/output pair. Errors inside
// the pipeline are reported and the run degrades rather than aborts wherever
// the partial result is still renderable.
func generate(cfg *config.Config, inPath, outPath string, opts runOptions) {
	runLog := logger.New(AppName)

	in, err := os.Open(inPath)
	if err != nil {
		runLog.Errorf("Error trying to find input file %s: %v", inPath, err)
		return
	}

	out, err := os.Create(outPath)
	if err != nil {
		// No output to write to: skip the pipeline, but still release the input.
		runLog.Errorf("Error opening output file %s: %v", outPath, err)
		closeQuietly(in, inPath)
		return
	}

	seps := tokenize.NewSeparatorSet(cfg.Tokens.Separators)
	counter := freq.NewCounter(seps)
	if err := counter.CountReader(in); err != nil {
		runLog.Warnf("Input read failed partway, rendering the %d words counted so far", counter.Len())
	}
	runLog.Debugf("Counted %d unique words in %s", counter.Len(), inPath)

	sel := cloud.Select(counter.Pairs(), opts.count)
	scale := cfg.Scale()

	if err := cloud.WritePage(out, sel, scale, inPath, cfg.Cloud.StylesheetURL); err != nil {
		runLog.Errorf("Error writing tag cloud to %s: %v", outPath, err)
	} else {
		runLog.Debugf("Wrote %d words to %s", len(sel.Words), outPath)
	}

	if opts.preview {
		fmt.Println(cli.PreviewTable(sel, scale))
	}

	if opts.report {
		run := report.FromSelection(sel, scale, inPath, opts.requested)
		reportPath := report.Path(outPath)
		if err := report.Write(reportPath, run); err != nil {
			log.Warnf("Could not write run report %s: %v", reportPath, err)
		} else {
			log.Debugf("Wrote run report to %s", reportPath)
		}
	}

	closeQuietly(in, inPath)
	closeQuietly(out, outPath)
}

// closeQuietly closes f exactly once; a close failure is reported but never
// escalated since all the real work is already done.
func closeQuietly(f *os.File, name string) {
	if err := f.Close(); err != nil {
		log.Warnf("Error closing file %s: %v", name, err)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ TagCloud ] Turns word frequencies into an HTML tag cloud")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
