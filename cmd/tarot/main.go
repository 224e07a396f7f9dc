// Command tarot draws a single reading from a directory of card images.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"

	"github.com/randomtoy/tarot-deck/internal/adapters/decks"
	"github.com/randomtoy/tarot-deck/internal/app"
	"github.com/randomtoy/tarot-deck/internal/config"
	"github.com/randomtoy/tarot-deck/internal/domain"
)

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tarot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cardsDir := fs.String("cards", "cards", "Directory containing card images.")
	ext := fs.String("ext", decks.DefaultExt, "Card image extension.")
	layout := fs.String("layout", domain.LayoutThreeCard, "Layout key, see -list.")
	count := fs.Int("n", 0, "Card count for the custom layout.")
	seed := fs.Int64("seed", -1, "Shuffle seed; negative means random.")
	list := fs.Bool("list", false, "List layouts and exit.")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printLayouts(stdout, domain.Layouts())
		return 0
	}

	svc, err := app.NewReadingService(ctx, decks.NewDirStore(*cardsDir, *ext, logger), stdRNG{}, logger)
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if *seed >= 0 {
		s := uint64(*seed)
		svc.Reset(ctx, &s)
	}

	reading, err := svc.Draw(ctx, app.DrawRequest{Layout: *layout, Count: *count})
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	printReading(stdout, reading)
	return 0
}

func printLayouts(w io.Writer, layouts []domain.Layout) {
	key := color.New(color.FgCyan, color.Bold)
	for _, l := range layouts {
		key.Fprintf(w, "%-14s", l.Key)
		fmt.Fprintf(w, " %s (%d) - %s\n", l.Name, l.Count, l.Description)
	}
}

func printReading(w io.Writer, r app.Reading) {
	color.New(color.FgMagenta, color.Bold).Fprintf(w, "%s\n", r.Layout.Name)
	label := color.New(color.FgYellow)
	for _, c := range r.Cards {
		label.Fprintf(w, "%2d. %s: ", c.Position, c.Label)
		fmt.Fprintln(w, c.Name)
	}
	if r.Short {
		color.New(color.FgRed).Fprintf(w, "only %d of %d cards were left in the deck\n", len(r.Cards), r.Requested)
	}
}
