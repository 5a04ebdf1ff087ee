package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ozzus/nextbid/internal/application/planner"
	"github.com/ozzus/nextbid/internal/application/render"
	"github.com/ozzus/nextbid/internal/application/service"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/ports"
	"github.com/ozzus/nextbid/internal/infrastructures/fixtures"
	"go.uber.org/zap"
)

type options struct {
	fixturesDir string
	profileID   string
	period      string
	maxLines    int
	demo        bool
	noColor     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.fixturesDir, "fixtures", "config/fixtures", "directory with profiles.yaml and trips.yaml")
	flag.StringVar(&opts.profileID, "profile", "oli", "profile id to compile")
	flag.StringVar(&opts.period, "period", "", "planning period to match against, e.g. \"Jan 2026\"")
	flag.IntVar(&opts.maxLines, "max-lines", 0, "maximum number of bid lines (0 uses the default)")
	flag.BoolVar(&opts.demo, "demo", false, "preview the sample 777 ideal-month group instead of a profile")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flag.Parse()

	if opts.noColor {
		color.NoColor = true
	}

	if err := run(context.Background(), color.Output, opts); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "bidctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, opts options) error {
	store := fixtures.NewFileStore(opts.fixturesDir)

	if opts.demo {
		trips, err := store.ListTrips(ctx, opts.period)
		if err != nil {
			return err
		}
		preview, err := planner.PreviewGroup(planner.Demo777IdealGroup(), trips, nil)
		if err != nil {
			return err
		}
		printGroupPreview(out, preview)
		return nil
	}

	svc := service.NewBidService(zap.NewNop(), store, store, nil, 0, 0)
	preview, err := svc.PreviewBidGroup(ctx, opts.profileID, opts.period, opts.maxLines)
	if err != nil {
		return err
	}
	printBidGroup(out, preview)
	return nil
}

func kindColor(kind models.CommandKind) *color.Color {
	if kind == models.CommandAvoid {
		return color.New(color.FgRed)
	}
	return color.New(color.FgGreen)
}

func printBidGroup(out io.Writer, preview ports.BidGroupPreview) {
	header := color.New(color.Bold)
	dim := color.New(color.Faint)

	header.Fprintf(out, "Bid group for %s (max %d lines)\n", preview.ProfileID, preview.MaxLines)
	for i, line := range preview.Lines {
		label := fmt.Sprintf("T%02d S%d", line.LineNumber, line.Strength)
		fmt.Fprintf(out, "%s %s\n", label, kindColor(line.Command.Kind).Sprint(line.Text))
		if line.Command.Note != "" {
			dim.Fprintf(out, "        %s\n", line.Command.Note)
		}
		if i < len(preview.Matches) {
			fmt.Fprintf(out, "        trips: %s\n", tripNumbers(preview.Matches[i].MatchedTrips))
		}
	}
}

func printGroupPreview(out io.Writer, preview models.BidGroupPreview) {
	color.New(color.Bold).Fprintf(out, "%s (rank %d)\n", preview.Group.Name, preview.Group.Rank)
	for _, cmd := range preview.Commands {
		line := render.GroupLine(cmd.Input, preview.Group.Rank)
		fmt.Fprintln(out, kindColor(cmd.Command.Kind).Sprint(line))
		fmt.Fprintf(out, "        %s\n", cmd.Rendered)
		fmt.Fprintf(out, "        trips: %s\n", tripNumbers(cmd.MatchedTrips))
	}
}

func tripNumbers(trips []models.Trip) string {
	if len(trips) == 0 {
		return "-"
	}
	numbers := make([]string, 0, len(trips))
	for _, t := range trips {
		numbers = append(numbers, t.TripNumber)
	}
	return strings.Join(numbers, ", ")
}
