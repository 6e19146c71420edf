// Modifier text parser: classifies free-text game-effect lines into typed
// modifier records and emits them as YAML for the downstream calculation
// engine.
//
// Usage:
//
//	go run ./cmd/modparse mods.txt uniques.txt   # parse lines from files
//	go run ./cmd/modparse -                      # parse lines from stdin
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/voline/pobgo/internal/config"
	"github.com/voline/pobgo/internal/data"
	"github.com/voline/pobgo/internal/game/mod"
)

const ConfigPath = "config/modparse.yaml"

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

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// fileReport — результат разбора одного входного файла, строки в исходном
// порядке.
type fileReport struct {
	File  string       `yaml:"file"`
	Lines []mod.Result `yaml:"lines"`
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("POBGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadModParse(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	inputs := cfg.Inputs
	if args := os.Args[1:]; len(args) > 0 {
		inputs = args
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files: pass file paths or set inputs in %s", cfgPath)
	}

	// Registries строятся один раз и дальше только читаются.
	if err := data.LoadModifierPatterns(); err != nil {
		return err
	}
	if err := data.LoadModifierNames(); err != nil {
		return err
	}

	reports := make([]fileReport, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range inputs {
		i, path := i, path
		g.Go(func() error {
			report, err := parseFile(ctx, path, cfg.SkipUnresolved)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeReports(cfg.Output, reports); err != nil {
		return err
	}

	var total, unresolved int
	for _, r := range reports {
		for _, line := range r.Lines {
			total++
			if line.Unresolved {
				unresolved++
			}
		}
	}
	slog.Info("done", "files", len(reports), "lines", total, "unresolved", unresolved)
	return nil
}

// parseFile parses one modifier line per input line. Blank lines and
// #-comments are skipped; everything else maps to exactly one result.
func parseFile(ctx context.Context, path string, skipUnresolved bool) (fileReport, error) {
	var in io.ReadCloser
	if path == "-" {
		in = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fileReport{}, err
		}
		in = f
	}
	defer in.Close()

	report := fileReport{File: path}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fileReport{}, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result := mod.ParseLine(line)
		if result.Unresolved {
			slog.Debug("unresolved modifier", "file", path, "text", line)
			if skipUnresolved {
				continue
			}
		}
		report.Lines = append(report.Lines, result)
	}
	if err := scanner.Err(); err != nil {
		return fileReport{}, err
	}
	return report, nil
}

func writeReports(output string, reports []fileReport) error {
	out := os.Stdout
	if output != "-" && output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report for %s: %w", r.File, err)
		}
	}
	return nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
