package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/dnninfer/nn"
	"github.com/born-ml/dnninfer/tensor"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		f           layerFlags
		weightsText string
		biasText    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write layer parameter files from text values",
		Long: `export reads in*out row-major weight values and out bias values as
whitespace separated text and writes them under --dir using the layer file
naming convention. The directory is created if needed.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			w, err := readTensorText(weightsText, f.in, f.out)
			if err != nil {
				return err
			}
			b, err := readTensorText(biasText, f.out)
			if err != nil {
				return err
			}

			layer, err := nn.NewLinear(f.in, f.out)
			if err != nil {
				return err
			}
			if err := layer.SetParameters(w, b); err != nil {
				return err
			}
			if err := os.MkdirAll(f.dir, 0o755); err != nil {
				return err
			}
			if err := layer.SaveParameters(f.dir, f.id); err != nil {
				return err
			}
			a.logger.Info("exported layer parameters",
				"layer", f.id,
				"weights", nn.WeightsPath(f.dir, f.id, f.in, f.out),
				"bias", nn.BiasPath(f.dir, f.id, f.out),
			)
			return nil
		},
	}
	f.addTo(cmd, false)
	cmd.Flags().StringVar(&weightsText, "weights-text", "", "text file with in*out weight values")
	cmd.Flags().StringVar(&biasText, "bias-text", "", "text file with out bias values")
	_ = cmd.MarkFlagRequired("weights-text")
	_ = cmd.MarkFlagRequired("bias-text")
	return cmd
}

func readTensorText(path string, shape ...int) (*tensor.Float32Tensor, error) {
	//nolint:gosec // G304: path is supplied by the user
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	values, err := readValues(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t, err := tensor.FromSlice(values, shape...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
