package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junctionbox/builder"
	"github.com/katalvlaran/junctionbox/geom"
)

// Point set kinds accepted by generate --kind.
const (
	kindCloud   = "cloud"
	kindLattice = "lattice"
	kindLine    = "line"
	kindSquare  = "square"
)

type generateFlags struct {
	kind     string
	n        int
	seed     int64
	extent   float64
	spacing  float64
	integral bool
	output   string
}

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd(&generateFlags{})

func init() {
	rootCmd.AddCommand(generateCmd)
}

// newGenerateCmd returns a generate command whose flags are bound to fl.
func newGenerateCmd(fl *generateFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic junction box file",
		Long: `generate writes a point file in the "x,y,z" format read by solve.

A lattice of --n boxes per axis holds n³ boxes; a cloud, a line and a square
hold --n, --n and 4 boxes respectively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeGenerated(*fl, cmd.OutOrStdout())
		},
	}

	f := c.Flags()
	f.StringVar(&fl.kind, "kind", kindCloud, "point set: cloud, lattice, line or square")
	f.IntVar(&fl.n, "n", 1000, "number of boxes (per axis for a lattice)")
	f.Int64Var(&fl.seed, "seed", 1, "RNG seed for cloud (0 means the default seed)")
	f.Float64Var(&fl.extent, "extent", builder.DefaultExtent, "side of the cloud bounding cube")
	f.Float64Var(&fl.spacing, "spacing", builder.DefaultSpacing, "neighbour distance for lattice, line and square")
	f.BoolVar(&fl.integral, "integral", true, "floor cloud coordinates to whole numbers")
	f.StringVarP(&fl.output, "output", "o", "", "output file (default stdout)")
	return c
}

// writeGenerated writes to fl.output, or to stdout when it is empty or "-".
func writeGenerated(fl generateFlags, stdout io.Writer) error {
	if fl.output == "" || fl.output == "-" {
		return runGenerate(fl, stdout)
	}
	f, err := os.Create(fl.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := runGenerate(fl, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// runGenerate builds the requested point set and writes it to w.
func runGenerate(fl generateFlags, w io.Writer) error {
	if !(fl.extent > 0) {
		return fmt.Errorf("extent must be positive, got %g", fl.extent)
	}
	if !(fl.spacing > 0) {
		return fmt.Errorf("spacing must be positive, got %g", fl.spacing)
	}

	var con builder.Constructor
	switch fl.kind {
	case kindCloud:
		con = builder.Cloud(fl.n)
	case kindLattice:
		con = builder.Lattice(fl.n, fl.n, fl.n)
	case kindLine:
		con = builder.Line(fl.n)
	case kindSquare:
		con = builder.Square()
	default:
		return fmt.Errorf("unknown kind %q (allowed: %s, %s, %s, %s)",
			fl.kind, kindCloud, kindLattice, kindLine, kindSquare)
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(fl.seed),
		builder.WithExtent(fl.extent),
		builder.WithSpacing(fl.spacing),
	}
	if fl.integral {
		bopts = append(bopts, builder.WithIntegral())
	}

	points, err := builder.BuildPoints(bopts, con)
	if err != nil {
		return err
	}
	return geom.WritePoints(w, points)
}
