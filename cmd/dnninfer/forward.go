package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/dnninfer/tensor"
)

func newForwardCmd(a *app) *cobra.Command {
	var (
		f      layerFlags
		input  string
		output string
		text   bool
	)
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Load a layer and run one forward pass",
		Long: `forward loads a layer and evaluates it on a batch read from --input.
The input holds batch*in float32 values, either raw (native byte order, no
header) or whitespace separated text with --text; the batch size is derived
from the value count. Results go to --output as raw float32, or to stdout as
text rows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layer, err := f.build(a.logger)
			if err != nil {
				return err
			}
			if err := layer.LoadParameters(f.dir, f.id); err != nil {
				return err
			}

			x, err := readInput(input, f.in, text)
			if err != nil {
				return err
			}
			batch, _ := x.Dim(0)
			y, err := tensor.New[float32](batch, f.out)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := layer.Forward(x, y); err != nil {
				return err
			}
			a.logger.Info("forward complete",
				"layer", f.id,
				"batch", batch,
				"in", f.in,
				"out", f.out,
				"gelu", f.gelu,
				"elapsed", time.Since(start),
			)

			if output == "" {
				return writeRows(cmd.OutOrStdout(), y.Data(), f.out)
			}
			return writeRawFile(output, y)
		},
	}
	f.addTo(cmd, true)
	cmd.Flags().StringVar(&input, "input", "", "input file")
	cmd.Flags().StringVar(&output, "output", "", "raw float32 output file (default: text on stdout)")
	cmd.Flags().BoolVar(&text, "text", false, "read --input as whitespace separated text")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// readInput loads a [batch, in] tensor from path.
func readInput(path string, in int, text bool) (*tensor.Float32Tensor, error) {
	//nolint:gosec // G304: input path is supplied by the user
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if text {
		values, err := readValues(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(values) == 0 || len(values)%in != 0 {
			return nil, fmt.Errorf("%s: %d values is not a positive multiple of %d features", path, len(values), in)
		}
		return tensor.FromSlice(values, len(values)/in, in)
	}

	rowBytes := in * 4
	if len(raw) == 0 || len(raw)%rowBytes != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a positive multiple of %d (in=%d float32 values)", path, len(raw), rowBytes, in)
	}
	x, err := tensor.New[float32](len(raw)/rowBytes, in)
	if err != nil {
		return nil, err
	}
	if err := tensor.ReadRaw(bytes.NewReader(raw), x); err != nil {
		return nil, err
	}
	return x, nil
}

func writeRawFile(path string, t *tensor.Float32Tensor) (err error) {
	//nolint:gosec // G304: output path is supplied by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return tensor.WriteRaw(f, t)
}
