/*
 * root.go, part of gognn.
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	gnn "github.com/rmera/gognn"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gognn",
		Short: "gognn - SchNet models for atomic structures",
		Long: `gognn builds SchNet-style graph neural networks from a YAML
configuration, stores their weights, and predicts properties of
molecules and crystals.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug messages")
	root.AddCommand(newInitCmd(), newPredictCmd(), newExponentCmd(), newScalerCmd())
	return root
}

func setupLogger(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig returns the default configuration if path is empty.
func loadConfig(path string) (*gnn.Config, error) {
	if path == "" {
		return gnn.DefaultConfig(), nil
	}
	return gnn.LoadConfig(path)
}

func newInitCmd() *cobra.Command {
	var cfgPath, out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build a model and write its initial weights",
		Long: `Build a model from a configuration file (or the defaults) and
write its freshly initialized weights, with the configuration, to a file.

Examples:
  gognn init --out weights.zst
  gognn init --config model.yaml --out weights.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			m, err := gnn.New(cfg)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := m.Save(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML model configuration")
	cmd.Flags().StringVarP(&out, "out", "o", "weights.zst", "output weight file")
	return cmd
}
