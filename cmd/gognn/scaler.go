package main

import (
	"encoding/json"
	"os"

	gnn "github.com/rmera/gognn"
	"github.com/rmera/gognn/nn"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

func newScalerCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "scaler",
		Short: "Fit the output scaler to a set of target values",
		Long: `Read the target properties of a data set, as a JSON array with
one array of values per structure, and print the scaler section of a
model configuration that maps standardized outputs back to them.

Examples:
  gognn scaler --input energies.json >> model.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			var rows [][]float64
			if err := json.NewDecoder(in).Decode(&rows); err != nil {
				return err
			}
			if len(rows) == 0 || len(rows[0]) == 0 {
				return nn.NewError(nn.ErrShape, "scaler", "no target values")
			}
			y := mat.NewDense(len(rows), len(rows[0]), nil)
			for i, r := range rows {
				if len(r) != len(rows[0]) {
					return nn.NewError(nn.ErrShape, "scaler", "row %d has %d values, row 0 has %d", i, len(r), len(rows[0]))
				}
				y.SetRow(i, r)
			}
			s, err := nn.FitStandardScaler(y)
			if err != nil {
				return err
			}
			out := struct {
				Scaler gnn.ScalerConfig `yaml:"scaler"`
			}{gnn.ScalerConfig{Mean: s.Mean, Stddev: s.Stddev}}
			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON target values, - for the standard input")
	return cmd
}
