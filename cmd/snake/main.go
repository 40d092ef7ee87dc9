package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Link87/snake/internal/app"
	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/graphics"
	"github.com/Link87/snake/internal/ui/graphics/screens"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := domain.DefaultGameConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "field width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "field height in tiles")
	flag.IntVar(&cfg.TickRate, "tps", cfg.TickRate, "game ticks per second")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "treat placement seed, 0 for random")
	flag.BoolVar(&cfg.Borders, "borders", cfg.Borders, "surround the field with walls")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	session, err := app.NewApp(cfg, ebiten.DefaultTPS)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	engine := graphics.NewEngine(session)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewConfigScreen(engine),
		screens.NewScoresScreen(engine),
		screens.NewGameScreen(engine),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			engine.Stop()
		case <-done:
		}
		return nil
	})

	runErr := engine.Run()
	close(done)
	stop()
	if err := g.Wait(); err != nil {
		log.Printf("Shutdown: %v", err)
	}

	if best, ok := session.History().Best(); ok {
		log.Printf("Best run #%d: score %d in %d ticks", best.Number, best.Result.Score, best.Result.Ticks)
	}

	if runErr != nil {
		log.Fatalf("UI error: %v", runErr)
	}
}
