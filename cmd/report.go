package cmd

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/junctionbox/candidates"
	"github.com/katalvlaran/junctionbox/circuit"
)

// writeReport prints both checkpoints with English digit grouping.
func writeReport(w io.Writer, res *circuit.Result) error {
	p := message.NewPrinter(language.English)

	if cp := res.Threshold; cp != nil {
		if _, err := p.Fprintf(w, "After adding %d wires, the three largest circuits have sizes %d, %d and %d.\n",
			cp.Wires, cp.Sizes[0], cp.Sizes[1], cp.Sizes[2]); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "The product of these sizes is %d.\n\n", cp.Product); err != nil {
			return err
		}
	}

	if cp := res.Final; cp != nil {
		if _, err := p.Fprintf(w, "%s and %s were the last two junction boxes connected.\n", cp.A, cp.B); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "The product of their x coordinates is %d.\n", cp.XProduct); err != nil {
			return err
		}
	} else {
		if _, err := p.Fprintf(w, "A single junction box needs no wires.\n"); err != nil {
			return err
		}
	}

	_, err := p.Fprintf(w, "%d wires laid, %d of %d candidates examined, total length %.3f.\n",
		res.Merges, res.Examined, candidates.Pairs(len(res.Points)), res.Length)
	return err
}
