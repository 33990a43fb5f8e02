package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	gnn "github.com/rmera/gognn"
	"github.com/rmera/gognn/chemgraph"
	"github.com/rmera/gognn/chemjson"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

type predictOptions struct {
	cfgPath      string
	weights      string
	input        string
	chunk        int
	workers      int
	maxNeighbors int
}

func newPredictCmd() *cobra.Command {
	o := &predictOptions{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict properties of structures read as JSON",
		Long: `Read structures, one JSON object each, and print the predicted
properties as JSON. Structures without edges get the radius graph of
their coordinates, using the cutoff radius of the model.

If --config is given, the model is built from it and the weights must
match. Otherwise the configuration stored with the weights is used.

Examples:
  gognn predict --weights weights.zst --input structures.json
  cat structures.json | gognn predict --weights weights.zst --chunk 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd.Context(), o, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.cfgPath, "config", "c", "", "YAML model configuration")
	cmd.Flags().StringVarP(&o.weights, "weights", "w", "", "weight file written by init")
	cmd.Flags().StringVarP(&o.input, "input", "i", "-", "JSON structures, - for the standard input")
	cmd.Flags().IntVar(&o.chunk, "chunk", 32, "structures per batch")
	cmd.Flags().IntVar(&o.workers, "workers", runtime.NumCPU(), "batches predicted at the same time")
	cmd.Flags().IntVar(&o.maxNeighbors, "max-neighbors", 0, "largest number of neighbors per atom, 0 for no limit")
	cmd.MarkFlagRequired("weights")
	return cmd
}

func loadModel(o *predictOptions) (*gnn.SchNet, error) {
	f, err := os.Open(o.weights)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if o.cfgPath == "" {
		return gnn.LoadModel(f)
	}
	cfg, err := gnn.LoadConfig(o.cfgPath)
	if err != nil {
		return nil, err
	}
	m, err := gnn.New(cfg)
	if err != nil {
		return nil, err
	}
	return m, m.Load(f)
}

func runPredict(ctx context.Context, o *predictOptions, stdin io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.chunk < 1 {
		return fmt.Errorf("predict: chunk must be positive, got %d", o.chunk)
	}
	m, err := loadModel(o)
	if err != nil {
		return err
	}
	in := stdin
	if o.input != "-" {
		f, err := os.Open(o.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	structs, jerr := chemjson.DecodeStructures(in)
	if jerr != nil {
		return jerr
	}
	cutoff := m.Config().CutoffRadius
	var batches []*gnn.Batch
	for i := 0; i < len(structs); i += o.chunk {
		b, jerr := chemjson.ToBatch(structs[i:min(i+o.chunk, len(structs))], cutoff, o.maxNeighbors)
		if jerr != nil {
			if jerr.Structure >= 0 {
				jerr.Structure += i
			}
			return jerr
		}
		batches = append(batches, b)
	}
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		for i, b := range batches {
			if err := logNeighbors(ctx, i, b); err != nil {
				return err
			}
		}
	}
	preds, err := gnn.PredictAll(ctx, m, batches, o.workers)
	if err != nil {
		return err
	}
	all := preds[0]
	for _, p := range preds[1:] {
		var s mat.Dense
		s.Stack(all, p)
		all = &s
	}
	if jerr := chemjson.NewInfo(structs, all).Send(out); jerr != nil {
		return jerr
	}
	return nil
}

// logNeighbors logs how many messages the atoms of batch i receive.
// Atoms with no neighbors within the cutoff only see their own embedding.
func logNeighbors(ctx context.Context, i int, b *gnn.Batch) error {
	dist, err := b.EdgeDistances()
	if err != nil {
		return err
	}
	G, err := chemgraph.NewGraph(b.AtomicNumbers, b.EdgeSrc, b.EdgeDst, dist)
	if err != nil {
		return err
	}
	most, isolated := 0, 0
	for _, d := range G.Degree() {
		most = max(most, d)
		if d == 0 {
			isolated++
		}
	}
	slog.DebugContext(ctx, "gognn: batch graph", "batch", i, "atoms", b.NAtoms(), "edges", b.NEdges(), "max_neighbors", most, "isolated", isolated)
	return nil
}
