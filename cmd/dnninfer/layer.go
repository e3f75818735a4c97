package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/dnninfer/nn"
)

// layerFlags identifies one layer and its parameter directory.
type layerFlags struct {
	dir     string
	id      int64
	in      int
	out     int
	gelu    string
	workers int
}

func (f *layerFlags) addTo(cmd *cobra.Command, withRuntime bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.dir, "dir", ".", "parameter directory")
	fs.Int64Var(&f.id, "layer", 0, "layer id used in parameter file names")
	fs.IntVar(&f.in, "in", 0, "input features")
	fs.IntVar(&f.out, "out", 0, "output features")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	if withRuntime {
		fs.StringVar(&f.gelu, "gelu", "none", "GELU kernel applied after the affine step: none, exp, tanh, exp64, vector")
		fs.IntVar(&f.workers, "workers", 0, "worker goroutines for row and element loops (0 = one per CPU)")
	}
}

func (f *layerFlags) validate() error {
	if f.in <= 0 || f.out <= 0 {
		return fmt.Errorf("--in and --out must be positive, got %d and %d", f.in, f.out)
	}
	return nil
}

// build constructs the layer described by the flags, without loading it.
func (f *layerFlags) build(logger *slog.Logger) (nn.Layer, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	cfg := nn.DefaultConfig()
	cfg.Logger = logger
	if f.workers > 0 {
		cfg.Parallel = cfg.Parallel.WithWorkers(f.workers)
	}

	if f.gelu == "" || strings.EqualFold(f.gelu, "none") {
		layer, err := nn.NewLinearWithConfig(f.in, f.out, cfg)
		if err != nil {
			return nil, err
		}
		return layer, nil
	}

	kind, err := nn.ParseGELUKind(f.gelu)
	if err != nil {
		return nil, err
	}
	cfg.Activation = kind
	layer, err := nn.NewLinearGELUWithConfig(f.in, f.out, cfg)
	if err != nil {
		return nil, err
	}
	return layer, nil
}

// readValues parses whitespace separated float32 values.
func readValues(r io.Reader) ([]float32, error) {
	var values []float32
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(values), err)
		}
		values = append(values, float32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// writeRows prints data as rows of width values.
func writeRows(w io.Writer, data []float32, width int) error {
	bw := bufio.NewWriter(w)
	for i, v := range data {
		if i%width != 0 {
			_ = bw.WriteByte(' ')
		}
		_, _ = bw.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		if i%width == width-1 {
			_ = bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
