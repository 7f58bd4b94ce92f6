package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/feliixx/gomutation/mutate"
	"github.com/feliixx/gomutation/residue"
)

// writeReport writes the analysis of a codon for the terminal:
//
// codon AUG
// original amino acid   Methionine (M)   CSCC[C@H](N)C(=O)O
// selected amino acid   Leucine (L)      CC(C)C[C@H](N)C(=O)O
//
// BLOSUM62 substitution scores (mean -0.95)
// L   Leucine         2   selected
// I   Isoleucine      1
// ...
func writeReport(out io.Writer, result mutate.Result, selected residue.Code) error {

	source, err := residue.Describe(result.Source)
	if err != nil {
		return err
	}
	sel, err := residue.Describe(selected)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)

	fmt.Fprintf(w, "codon %s\n", result.Codon)
	fmt.Fprintf(w, "original amino acid\t%s (%s)\t%s\n", source.Name, source.Code, source.SMILES)
	fmt.Fprintf(w, "selected amino acid\t%s (%s)\t%s\n", sel.Name, sel.Code, sel.SMILES)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBLOSUM62 substitution scores (mean %.2f)\n", result.MeanScore())
	for _, n := range result.Alternatives {
		info, err := residue.Describe(n.Residue)
		if err != nil {
			return err
		}
		mark := ""
		if n.Residue == selected {
			mark = "selected"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", info.Code, info.Name, n.Score, mark)
	}
	fmt.Fprintln(w)
	return w.Flush()
}
