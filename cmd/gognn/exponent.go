package main

import (
	"fmt"
	"strconv"

	"github.com/rmera/gognn/exponent"
	"github.com/spf13/cobra"
)

func newExponentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exponent <Z|symbol> [orbital]",
		Short: "Print Slater orbital exponents",
		Long: `Print the Slater exponent of one orbital of an element, or of all
its populated orbitals if no orbital is given. 0 means the orbital is
not populated.

Examples:
  gognn exponent 8 2p
  gognn exponent Fe`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := strconv.Atoi(args[0])
			if err != nil {
				z, err = exponent.Z(args[0])
				if err != nil {
					return err
				}
			}
			sym, err := exponent.Symbol(z)
			if err != nil {
				return err
			}
			orbs, err := exponent.Populated(z)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				o, err := exponent.ParseOrbital(args[1])
				if err != nil {
					return err
				}
				orbs = []exponent.Orbital{o}
			}
			for _, o := range orbs {
				e, err := exponent.Exponent(z, o)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s %.4f\n", sym, z, o, e)
			}
			return nil
		},
	}
}
