package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"decomment/internal/domain"
)

const (
	levelDebug = iota
	levelInfo
	levelError
)

// console writes progress, notices and errors to a single stream.
type console struct {
	out   io.Writer
	level int
	warn  *color.Color
	fail  *color.Color
	ok    *color.Color
}

func newConsole(out io.Writer, level string, useColor bool) *console {
	c := &console{
		out:   out,
		level: parseLevel(level),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
		ok:    color.New(color.FgGreen),
	}
	if !useColor {
		c.warn.DisableColor()
		c.fail.DisableColor()
		c.ok.DisableColor()
	}
	return c
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (c *console) cleaning(path string) {
	if c.level <= levelInfo {
		fmt.Fprintf(c.out, "Cleaning %s...\n", path)
	}
}

func (c *console) missingDir(path string) {
	if c.level <= levelInfo {
		c.warn.Fprintf(c.out, "Directory not found: %s\n", path)
	}
}

func (c *console) skipped(path string) {
	if c.level <= levelDebug {
		fmt.Fprintf(c.out, "Unchanged since last clean: %s\n", path)
	}
}

func (c *console) processingError(path string, err error) {
	c.fail.Fprintf(c.out, "Error processing %s: %v\n", path, err)
}

func (c *console) warning(msg string) {
	c.warn.Fprintf(c.out, "Warning: %s\n", msg)
}

func (c *console) summary(result *domain.RunResult) {
	verb := "cleaned"
	if result.DryRun {
		verb = "would change"
	}

	fmt.Fprintf(c.out, "\nClean complete:\n")
	c.ok.Fprintf(c.out, "  Files %s: %d\n", verb, result.FilesCleaned)
	fmt.Fprintf(c.out, "  Files unchanged: %d\n", result.FilesUnchanged)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(c.out, "  Files skipped:   %d (unchanged since last clean)\n", result.FilesSkipped)
	}
	if result.FilesFailed > 0 {
		c.fail.Fprintf(c.out, "  Files failed:    %d\n", result.FilesFailed)
	}
	fmt.Fprintf(c.out, "  Bytes removed:   %d\n", result.BytesRemoved)
	if result.EntriesPruned > 0 {
		fmt.Fprintf(c.out, "  Ledger pruned:   %d (files no longer present)\n", result.EntriesPruned)
	}

	if result.DryRun && c.level <= levelInfo {
		for _, f := range result.Files {
			if f.Status == domain.StatusCleaned {
				fmt.Fprintf(c.out, "  - %s (-%d bytes, -%d lines)\n", f.Path, f.BytesBefore-f.BytesAfter, f.LinesRemoved)
			}
		}
	}
}
