// Command gen writes random square matrices with a prescribed determinant,
// in the input format of cmd/det.
//
// Each fixture is the size n on its own line followed by the matrix; fixtures
// are separated by a blank line. Every fixture is checked with matrix.Det
// before it is written.
//
//	$ gen -n 3 -det 10 -seed 1 | det
//	10
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/PozhiloyPumba/Ilab-KI/builder"
	"github.com/PozhiloyPumba/Ilab-KI/internal/config"
	"github.com/PozhiloyPumba/Ilab-KI/matrix"
)

// floatVerifyTol is the relative tolerance for float fixtures.
const floatVerifyTol = 1e-9

var errVerify = errors.New("gen: determinant check failed")

// dumper is a generated fixture of any element type.
type dumper interface {
	Dump(w io.Writer) error
}

func main() {
	cfg := config.DefaultGen()
	level := cfg.LogLevel.String()
	flag.IntVar(&cfg.Size, "n", cfg.Size, "matrix size")
	flag.Int64Var(&cfg.Det, "det", cfg.Det, "target determinant")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of fixtures")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base seed, 0 seeds from the clock")
	flag.StringVar(&cfg.Type, "type", cfg.Type, "element type: int|float")
	flag.IntVar(&cfg.MaxCoef, "max-coef", cfg.MaxCoef, "bound of the row/column disguise coefficients")
	flag.BoolVar(&cfg.Zstd, "zstd", false, "zstd-compress stdout")
	flag.BoolVar(&cfg.Progress, "progress", false, "show a progress bar on stderr")
	flag.StringVar(&level, "log-level", level, "log level: debug|info|warn|error")
	flag.Parse()
	cfg.LogLevel = config.LogLevel(level)

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen: logger:", err)
		os.Exit(1)
	}

	var progress io.Writer
	if cfg.Progress {
		progress = os.Stderr
	}
	if err = run(context.Background(), cfg, os.Stdout, progress, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// run generates cfg.Count fixtures concurrently and writes them to out in
// index order. A nil progress writer disables the bar.
func run(ctx context.Context, cfg config.Gen, out, progress io.Writer, log *zap.Logger) (err error) {
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Info("generating fixtures",
		zap.Int("n", cfg.Size),
		zap.Int64("det", cfg.Det),
		zap.Int("count", cfg.Count),
		zap.Int64("seed", cfg.Seed),
		zap.String("type", cfg.Type),
	)

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(cfg.Count,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("generating fixtures"),
		)
	}

	fixtures := make([]dumper, cfg.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := generate(cfg, i)
			if err != nil {
				return fmt.Errorf("fixture %d (seed %d): %w", i, cfg.FixtureSeed(i), err)
			}
			fixtures[i] = f
			log.Debug("fixture ready", zap.Int("index", i))
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if cfg.Zstd {
		var enc *zstd.Encoder
		if enc, err = zstd.NewWriter(out); err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		defer func() {
			if cerr := enc.Close(); err == nil {
				err = cerr
			}
		}()
		out = enc
	}

	return writeFixtures(out, cfg.Size, fixtures)
}

func writeFixtures(out io.Writer, n int, fixtures []dumper) error {
	bw := bufio.NewWriter(out)
	for i, f := range fixtures {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%d\n", n)
		if err := f.Dump(bw); err != nil {
			return fmt.Errorf("fixture %d: %w", i, err)
		}
	}

	return bw.Flush()
}

func generate(cfg config.Gen, i int) (dumper, error) {
	if cfg.Type == config.ElemFloat {
		want := float64(cfg.Det)
		m, err := generateT(cfg, i, func(got float64) bool {
			return math.Abs(got-want) <= floatVerifyTol*math.Max(1, math.Abs(want))
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	m, err := generateT(cfg, i, func(got int64) bool { return got == cfg.Det })
	if err != nil {
		return nil, err
	}
	return m, nil
}

// generateT draws fixture i and re-draws it with AttemptSeed until the
// float64 determinant check passes. The generated matrix is always exact;
// a miss comes from cancellation inside matrix.Det on ill-conditioned
// fixtures, so another draw usually passes.
func generateT[T matrix.Number](cfg config.Gen, i int, ok func(T) bool) (*matrix.Dense[T], error) {
	var last T
	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		m, err := builder.RandomWithDet[T](cfg.Size, cfg.Det,
			builder.WithSeed(cfg.AttemptSeed(i, attempt)),
			builder.WithMaxCoef(cfg.MaxCoef),
		)
		if err != nil {
			return nil, err
		}
		d, err := matrix.Det(m)
		if err != nil {
			return nil, err
		}
		if ok(d) {
			return m, nil
		}
		last = d
	}

	return nil, fmt.Errorf("%w: last got %v, want %d after %d draws: float64 elimination "+
		"loses exactness on ill-conditioned fixtures; lower -n, |det| or -max-coef",
		errVerify, last, cfg.Det, config.MaxAttempts)
}
