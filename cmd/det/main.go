// Command det reads a square integer matrix from stdin and prints its
// determinant.
//
// Input: the size n, then n*n whitespace-separated int64 values in row-major
// order. Output: the determinant followed by a newline.
//
//	$ printf '2\n0 1\n1 0\n' | det
//	-1
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/PozhiloyPumba/Ilab-KI/internal/config"
	"github.com/PozhiloyPumba/Ilab-KI/matrix"
)

func main() {
	var (
		cfg   config.Config
		level string
	)
	flag.StringVar(&level, "log-level", config.LogLevelError.String(), "log level: debug|info|warn|error")
	flag.BoolVar(&cfg.Zstd, "zstd", false, "stdin is zstd-compressed")
	flag.Parse()
	cfg.LogLevel = config.LogLevel(level)

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "det: logger:", err)
		os.Exit(1)
	}

	if err = run(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Error("determinant failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	if cfg.Zstd {
		dec, err := zstd.NewReader(in)
		if err != nil {
			return fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		in = dec
	}
	br := bufio.NewReader(in)

	var n int
	if _, err := fmt.Fscan(br, &n); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("read size: %w", err)
	}
	m, err := matrix.NewDense[int64](n, n)
	if err != nil {
		return fmt.Errorf("size %d: %w", n, err)
	}
	if err = m.Scan(br); err != nil {
		return fmt.Errorf("read matrix: %w", err)
	}
	log.Debug("matrix read", zap.Int("n", n))

	d, err := matrix.Det(m)
	if err != nil {
		return err
	}
	log.Info("determinant computed", zap.Int("n", n), zap.Int64("det", d))

	_, err = fmt.Fprintln(out, d)

	return err
}
