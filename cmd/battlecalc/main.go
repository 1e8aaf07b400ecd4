// battlecalc evaluates battle scenarios and prints every outcome of the
// turn with its probability.
//
// Usage:
//
//	battlecalc [-config config/battlecalc.yaml] scenarios.yaml [more.yaml ...]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlecalc/internal/config"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/game/turn"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/scenario"
)

const ConfigPath = "config/battlecalc.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// result is one evaluated scenario.
type result struct {
	name     string
	branches []model.Transposition
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("battlecalc", flag.ContinueOnError)
	cfgPath := fs.String("config", defaultConfigPath(), "config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: battlecalc [-config path] scenarios.yaml ...")
	}

	cfg, err := config.LoadCalc(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Info("config loaded", "generation", cfg.Generation, "calc_type", cfg.CalcType, "workers", cfg.Workers)

	if err := data.Load(); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	rules, _ := cfg.Ruleset()
	engine, err := turn.New(turn.Options{
		CalcType:       damage.CalcType(cfg.CalcType),
		Ruleset:        rules,
		ReplaceFainted: cfg.ReplaceFainted,
	})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	var scenarios []scenario.Scenario
	for _, path := range fs.Args() {
		loaded, err := scenario.Load(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, loaded...)
	}
	slog.Info("scenarios loaded", "files", fs.NArg(), "scenarios", len(scenarios))

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	results, err := evaluate(ctx, engine, scenarios, cfg.Workers)
	if err != nil {
		return err
	}
	return report(out, results)
}

// evaluate resolves every scenario, at most workers at a time. Each
// scenario builds its own state.
func evaluate(ctx context.Context, engine *turn.Engine, scenarios []scenario.Scenario, workers int) ([]result, error) {
	results := make([]result, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, user, opp, err := sc.Build()
			if err != nil {
				return err
			}
			branches, err := engine.Transpositions(s, user, opp)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.Name, err)
			}
			results[i] = result{name: sc.Name, branches: branches}
			slog.Debug("scenario evaluated", "name", sc.Name, "branches", len(branches))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluating scenarios: %w", err)
	}
	return results, nil
}

func report(w io.Writer, results []result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "== %s (%d branches)\n", r.name, len(r.branches))
		for _, b := range r.branches {
			steps := make([]string, len(b.Instructions))
			for i, in := range b.Instructions {
				steps[i] = in.String()
			}
			line := strings.Join(steps, ", ")
			if line == "" {
				line = "(no change)"
			}
			if b.Frozen {
				line += " [battle over]"
			}
			fmt.Fprintf(bw, "%9.6f  %s\n", b.Probability, line)
		}
	}
	return bw.Flush()
}

func defaultConfigPath() string {
	if p := os.Getenv("BATTLECALC_CONFIG"); p != "" {
		return p
	}
	return ConfigPath
}
