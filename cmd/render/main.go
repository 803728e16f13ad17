// Command render draws a stat card to a PNG file, either from a snapshot JSON
// file or by looking a player up on the hiscores.
//
//	render -in zezima.json -out card.png -options xp,outline
//	render -player Zezima -hiscores-url https://stats.example.test -edition rs3
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/listenupapp/statcard/internal/assets"
	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/dto"
	"github.com/listenupapp/statcard/internal/hiscores"
	"github.com/listenupapp/statcard/internal/logger"
	"github.com/listenupapp/statcard/internal/validation"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	in := fs.String("in", "", "Snapshot JSON file")
	player := fs.String("player", "", "Player to fetch from the hiscores instead of -in")
	hiscoresURL := fs.String("hiscores-url", os.Getenv("HISCORES_BASE_URL"), "Base URL of the hiscores service")
	out := fs.String("out", "card.png", "Output PNG file")
	editionName := fs.String("edition", "oldschool", "Game edition (oldschool, runescape)")
	options := fs.String("options", "", "Comma separated options: xp, virtual, maxed, outline, debug, backgrounds")
	assetsPath := fs.String("assets", os.Getenv("ASSETS_PATH"), "Asset root with fonts and icons")
	font := fs.String("font", "", "Font name used for card text")
	sequential := fs.Bool("sequential", false, "Render sections one after another")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if (*in == "") == (*player == "") {
		return fmt.Errorf("exactly one of -in or -player is required")
	}
	edition, ok := domain.ParseEdition(*editionName)
	if !ok {
		return fmt.Errorf("unknown edition %q", *editionName)
	}

	log := logger.New(logger.Config{
		Writer: os.Stderr,
		Level:  logger.ParseLevel(*logLevel),
	}).Logger

	reg, err := assets.Load(*assetsPath, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := validation.New()
	req := card.Request{Edition: edition, Options: card.ParseOptionList(*options)}
	var fetch card.FetchFunc
	if *in != "" {
		fetch, req.RawDataURL, err = fileFetch(*in, v)
	} else {
		fetch, req.RawDataURL, err = playerFetch(*hiscoresURL, edition, *player, v, log)
	}
	if err != nil {
		return err
	}

	compositor := card.NewCompositor(card.NewBuilders(reg, card.BuilderConfig{
		Font:     *font,
		Parallel: !*sequential,
	}), log)

	start := time.Now()
	c, err := compositor.Render(ctx, req, fetch, card.LogSink{Logger: log})
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, c.PNG, 0o644); err != nil {
		return fmt.Errorf("write card: %w", err)
	}

	fmt.Printf("%s: %dx%d card for %s (%s, %d bytes, %s)\n",
		*out, c.Width, c.Height, c.Player, c.ID, len(c.PNG), time.Since(start).Round(time.Millisecond))
	if c.RawDataURL != "" {
		fmt.Printf("raw data: %s\n", c.RawDataURL)
	}
	return nil
}

// fileFetch decodes a snapshot file up front so validation errors surface
// before rendering.
func fileFetch(path string, v *validation.Validator) (card.FetchFunc, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := dto.Decode(f, v)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return card.StaticFetch(snapshot.ToDomain()), snapshot.RawDataURL, nil
}

func playerFetch(baseURL string, edition domain.Edition, player string, v *validation.Validator, log *slog.Logger) (card.FetchFunc, string, error) {
	client, err := hiscores.New(hiscores.Config{BaseURL: baseURL}, v, log)
	if err != nil {
		return nil, "", err
	}
	// The process exits right after one render; the limiter needs no cleanup.
	return client.Fetcher(edition, player), client.RawDataURL(edition, player), nil
}
