// Package main provides the armory binary, which builds characters from YAML
// sheets, applies their items, and reports the resulting attributes and
// profession matchups.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/statcore/internal/config"
	"github.com/cory-johannsen/statcore/internal/game/character"
	"github.com/cory-johannsen/statcore/internal/game/item"
	"github.com/cory-johannsen/statcore/internal/game/profession"
	"github.com/cory-johannsen/statcore/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and environment only")
	sheetsDir := flag.String("sheets", "", "override content.sheets_dir")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *sheetsDir != "" {
		cfg.Content.SheetsDir = *sheetsDir
	}

	logger, err := observability.NewLogger("armory", cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal("armory failed", zap.Error(err))
	}
}

// run loads every sheet under cfg.Content.SheetsDir, builds the characters,
// and writes the report to out.
func run(cfg config.Config, out io.Writer, logger *zap.Logger) error {
	start := time.Now()

	sheets, err := character.LoadSheets(cfg.Content.SheetsDir)
	if err != nil {
		return fmt.Errorf("loading sheets: %w", err)
	}
	logger.Info("sheets loaded",
		zap.String("dir", cfg.Content.SheetsDir),
		zap.Int("count", len(sheets)),
		zap.Duration("elapsed", time.Since(start)),
	)

	applier := item.NewApplier(logger)
	chars := make([]*character.Character, 0, len(sheets))
	for _, sheet := range sheets {
		p, items, err := character.Resolve(sheet)
		if err != nil {
			return fmt.Errorf("building %q: %w", sheet.Name, err)
		}
		c := character.New(sheet.Name, p, p.Base())
		applier.ApplyAll(c, items...)
		logger.Debug("character built",
			zap.String("id", c.ID.String()),
			zap.String("name", c.Name),
			zap.Stringer("profession", p.Kind()),
			zap.Int("items", len(items)),
		)
		chars = append(chars, c)
	}

	for _, c := range chars {
		if _, err := fmt.Fprint(out, c.Summary()); err != nil {
			return err
		}
	}

	if cfg.Report.Matchups && len(chars) > 1 {
		if err := writeMatchups(out, chars); err != nil {
			return err
		}
	}
	return nil
}

// writeMatchups prints a row-vs-column outcome table.
func writeMatchups(out io.Writer, chars []*character.Character) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "\nvs")
	for _, c := range chars {
		fmt.Fprintf(tw, "\t%s", c.Name)
	}
	fmt.Fprintln(tw)
	for _, a := range chars {
		fmt.Fprint(tw, a.Name)
		for _, b := range chars {
			fmt.Fprintf(tw, "\t%s", outcomeLabel(a.Profession, b.Profession))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func outcomeLabel(a, b profession.Profession) string {
	switch profession.Matchup(a, b) {
	case profession.Advantage:
		return "+"
	case profession.Disadvantage:
		return "-"
	default:
		return "="
	}
}
