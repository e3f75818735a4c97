package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/dnninfer/nn"
)

func newPathsCmd(_ *app) *cobra.Command {
	var f layerFlags
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the parameter file paths of a layer and whether they exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range []struct {
				name, path string
				size       int
			}{
				{"weights", nn.WeightsPath(f.dir, f.id, f.in, f.out), f.in * f.out * 4},
				{"bias", nn.BiasPath(f.dir, f.id, f.out), f.out * 4},
			} {
				fmt.Fprintf(out, "%-7s %s %s\n", p.name, p.path, fileStatus(p.path, p.size))
			}
			return nil
		},
	}
	f.addTo(cmd, false)
	return cmd
}

func fileStatus(path string, want int) string {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	case err != nil:
		return "error: " + err.Error()
	case info.Size() < int64(want):
		return fmt.Sprintf("short (%d of %d bytes)", info.Size(), want)
	default:
		return "ok"
	}
}
