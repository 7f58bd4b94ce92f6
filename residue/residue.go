// Package residue is the catalog of the 20 canonical amino acids:
// one-letter code, full name and a SMILES string describing the
// structure of the molecule.
package residue

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnknownResidue is returned for a symbol that is not one of the
// 20 canonical one-letter codes
var ErrUnknownResidue = errors.New("unknown residue")

// Code is the one-letter code of an amino acid. The zero value is
// not a residue
type Code byte

func (c Code) String() string {
	if c == 0 {
		return ""
	}
	return string(rune(c))
}

// Info describes a canonical amino acid
type Info struct {
	Code Code
	Name string
	// SMILES is the structural descriptor of the molecule. It is opaque
	// to this module and only meant to be handed to a Renderer
	SMILES string
}

var catalog = map[Code]Info{
	'A': {'A', "Alanine", "C[C@H](N)C(=O)O"},
	'R': {'R', "Arginine", "N[C@H](CCCNC(=N)N)C(=O)O"},
	'N': {'N', "Asparagine", "N[C@H](CC(=O)N)C(=O)O"},
	'D': {'D', "Aspartic Acid", "N[C@H](CC(=O)O)C(=O)O"},
	'C': {'C', "Cysteine", "N[C@H](CS)C(=O)O"},
	'Q': {'Q', "Glutamine", "N[C@H](CCC(=O)N)C(=O)O"},
	'E': {'E', "Glutamic Acid", "N[C@H](CCC(=O)O)C(=O)O"},
	'G': {'G', "Glycine", "NCC(=O)O"},
	'H': {'H', "Histidine", "N[C@H](Cc1ncc[nH]1)C(=O)O"},
	'I': {'I', "Isoleucine", "CC[C@H](C)[C@H](N)C(=O)O"},
	'L': {'L', "Leucine", "CC(C)C[C@H](N)C(=O)O"},
	'K': {'K', "Lysine", "NCCCC[C@H](N)C(=O)O"},
	'M': {'M', "Methionine", "CSCC[C@H](N)C(=O)O"},
	'F': {'F', "Phenylalanine", "N[C@H](Cc1ccccc1)C(=O)O"},
	'P': {'P', "Proline", "O=C(O)[C@H]1CCCN1"},
	'S': {'S', "Serine", "N[C@H](CO)C(=O)O"},
	'T': {'T', "Threonine", "CC(O)[C@H](N)C(=O)O"},
	'W': {'W', "Tryptophan", "N[C@H](Cc1c[nH]c2ccccc12)C(=O)O"},
	'Y': {'Y', "Tyrosine", "N[C@H](Cc1ccc(O)cc1)C(=O)O"},
	'V': {'V', "Valine", "CC(C)[C@H](N)C(=O)O"},
}

// canonical codes in alphabetical order
const canonical = "ACDEFGHIKLMNPQRSTVWY"

// Canonical returns the 20 canonical codes in alphabetical order
func Canonical() []Code {
	codes := make([]Code, len(canonical))
	for i := 0; i < len(canonical); i++ {
		codes[i] = Code(canonical[i])
	}
	return codes
}

// IsCanonical reports whether c is one of the 20 canonical codes
func IsCanonical(c Code) bool {
	_, ok := catalog[c]
	return ok
}

// Describe returns the name and structural descriptor of c
func Describe(c Code) (Info, error) {
	info, ok := catalog[c]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownResidue, c.String())
	}
	return info, nil
}

// Renderer turns a structural descriptor into a displayable image.
// Drawing molecules is left to the caller, this package only supplies
// the descriptors
type Renderer interface {
	Render(descriptor string) (image.Image, error)
}

// Draw renders the structure of c with r
func Draw(r Renderer, c Code) (image.Image, error) {
	info, err := Describe(c)
	if err != nil {
		return nil, err
	}
	img, err := r.Render(info.SMILES)
	if err != nil {
		return nil, fmt.Errorf("fail to render %s: %v", info.Name, err)
	}
	return img, nil
}
