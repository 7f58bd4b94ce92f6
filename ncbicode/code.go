// Package ncbicode stores codon <-> AA
// translation for RNA codons.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package ncbicode

import (
	"errors"
	"fmt"
	"sort"
)

// Stop is the symbol used for stop codons
const Stop = '*'

// ErrUnknownCodon is returned when translating a codon that
// does not encode an amino acid in the table
var ErrUnknownCodon = errors.New("unknown codon")

var (
	standard = map[string]byte{
		"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
		"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
		"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
		"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

		"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
		"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
		"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

		"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
		"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
		"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
		"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

		"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
		"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
		"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
		"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	}

	// ************************************
	// diff from the standard code

	vertebrateMitochondrialDiff = map[string]byte{
		"AGA": '*',
		"AGG": '*',
		"AUA": 'M',
		"UGA": 'W',
	}
	yeastMitochondrialDiff = map[string]byte{
		"AUA": 'M',
		"CUU": 'T',
		"CUC": 'T',
		"CUA": 'T',
		"CUG": 'T',
		"UGA": 'W',
	}
	moldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasmaDiff = map[string]byte{
		"UGA": 'W',
	}
	invertebrateMitochondrialDiff = map[string]byte{
		"AGA": 'S',
		"AGG": 'S',
		"AUA": 'M',
		"UGA": 'W',
	}
	ciliateDasycladaceanHexamitaDiff = map[string]byte{
		"UAA": 'Q',
		"UAG": 'Q',
	}
	echinodermFlatwormMitochondrialDiff = map[string]byte{
		"AAA": 'N',
		"AGA": 'S',
		"AGG": 'S',
		"UGA": 'W',
	}
	euplotidDiff = map[string]byte{
		"UGA": 'C',
	}
	// only start codons differ from the standard code
	bacterialArchaealPlantPlastidDiff = map[string]byte{}

	alternativeYeastDiff = map[string]byte{
		"CUG": 'S',
	}
	ascidianMitochondrialDiff = map[string]byte{
		"AGA": 'G',
		"AGG": 'G',
		"AUA": 'M',
		"UGA": 'W',
	}
	alternativeFlatwormMitochondrialDiff = map[string]byte{
		"AAA": 'N',
		"AGA": 'S',
		"AGG": 'S',
		"UAA": 'Y',
		"UGA": 'W',
	}
	chlorophyceanMitochondrialDiff = map[string]byte{
		"UAG": 'L',
	}
	trematodeMitochondrialDiff = map[string]byte{
		"UGA": 'W',
		"AUA": 'M',
		"AGA": 'S',
		"AGG": 'S',
		"AAA": 'N',
	}
	scenedesmusObliquusMitochondrialDiff = map[string]byte{
		"UCA": '*',
		"UAG": 'L',
	}
	thraustochytriumMitochondrialDiff = map[string]byte{
		"UUA": '*',
	}
	pterobranchiaMitochondrialDiff = map[string]byte{
		"AGA": 'S',
		"AGG": 'K',
		"UGA": 'W',
	}
	candidateDivisionSR1GracilibacteriaDiff = map[string]byte{
		"UGA": 'G',
	}
	pachysolenTannophilusDiff = map[string]byte{
		"CUG": 'A',
	}
	mesodiniumDiff = map[string]byte{
		"UAA": 'Y',
		"UAG": 'Y',
	}
	peritrichDiff = map[string]byte{
		"UAA": 'E',
		"UAG": 'E',
	}

	diffs = map[int]map[string]byte{
		VertebrateMitochondrial: vertebrateMitochondrialDiff,
		YeastMitochondrial:      yeastMitochondrialDiff,
		MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma: moldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasmaDiff,
		InvertebrateMitochondrial:                                   invertebrateMitochondrialDiff,
		CiliateDasycladaceanHexamita:                                ciliateDasycladaceanHexamitaDiff,
		EchinodermFlatwormMitochondrial:                             echinodermFlatwormMitochondrialDiff,
		Euplotid:                                                    euplotidDiff,
		BacterialArchaealPlantPlastid:                               bacterialArchaealPlantPlastidDiff,
		AlternativeYeast:                                            alternativeYeastDiff,
		AscidianMitochondrial:                                       ascidianMitochondrialDiff,
		AlternativeFlatwormMitochondrial:                            alternativeFlatwormMitochondrialDiff,
		ChlorophyceanMitochondrial:                                  chlorophyceanMitochondrialDiff,
		TrematodeMitochondrial:                                      trematodeMitochondrialDiff,
		ScenedesmusObliquusMitochondrial:                            scenedesmusObliquusMitochondrialDiff,
		ThraustochytriumMitochondrial:                               thraustochytriumMitochondrialDiff,
		PterobranchiaMitochondrial:                                  pterobranchiaMitochondrialDiff,
		CandidateDivisionSR1Gracilibacteria:                         candidateDivisionSR1GracilibacteriaDiff,
		PachysolenTannophilus:                                       pachysolenTannophilusDiff,
		Mesodinium:                                                  mesodiniumDiff,
		Peritrich:                                                   peritrichDiff,
	}

	standardTable = newTable(Standard, nil)
)

// NCBI ids of the available genetic codes. NCBI numbers the
// standard code 1, 0 is accepted as well
const (
	Standard                                                    = 0
	StandardNCBI                                                = 1
	VertebrateMitochondrial                                     = 2
	YeastMitochondrial                                          = 3
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma = 4
	InvertebrateMitochondrial                                   = 5
	CiliateDasycladaceanHexamita                                = 6
	EchinodermFlatwormMitochondrial                             = 9
	Euplotid                                                    = 10
	BacterialArchaealPlantPlastid                               = 11
	AlternativeYeast                                            = 12
	AscidianMitochondrial                                       = 13
	AlternativeFlatwormMitochondrial                            = 14
	ChlorophyceanMitochondrial                                  = 16
	TrematodeMitochondrial                                      = 21
	ScenedesmusObliquusMitochondrial                            = 22
	ThraustochytriumMitochondrial                               = 23
	PterobranchiaMitochondrial                                  = 24
	CandidateDivisionSR1Gracilibacteria                         = 25
	PachysolenTannophilus                                       = 26
	Mesodinium                                                  = 29
	Peritrich                                                   = 30
)

// Table is a complete genetic code: each of the 64 RNA codons maps
// either to a one-letter amino acid code or to Stop. A Table is
// never modified once built and can be shared between goroutines
type Table struct {
	id     int
	codons map[string]byte
}

func newTable(id int, diff map[string]byte) *Table {

	codons := make(map[string]byte, len(standard))
	for codon, aaCode := range standard {
		codons[codon] = aaCode
	}
	for codon, aaCode := range diff {
		codons[codon] = aaCode
	}
	return &Table{id: id, codons: codons}
}

// StandardTable returns the standard genetic code
func StandardTable() *Table {
	return standardTable
}

// LoadTable returns the genetic code with the given NCBI id
func LoadTable(code int) (*Table, error) {

	if code == Standard || code == StandardNCBI {
		return standardTable, nil
	}

	tableDiff, ok := diffs[code]
	if !ok {
		return nil, fmt.Errorf("invalid table code: %v", code)
	}
	return newTable(code, tableDiff), nil
}

// ID returns the NCBI id of the table
func (t *Table) ID() int {
	return t.id
}

// Translate returns the one-letter code of the amino acid encoded
// by codon. Stop codons and anything that is not an uppercase RNA
// codon are rejected with ErrUnknownCodon
func (t *Table) Translate(codon string) (byte, error) {
	aaCode, ok := t.codons[codon]
	if !ok || aaCode == Stop {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCodon, codon)
	}
	return aaCode, nil
}

// IsStop reports whether codon is a stop codon in this table
func (t *Table) IsStop(codon string) bool {
	return t.codons[codon] == Stop
}

// StopCodons returns the stop codons of the table, sorted
func (t *Table) StopCodons() []string {
	return t.filter(func(aaCode byte) bool { return aaCode == Stop })
}

// SenseCodons returns the codons encoding an amino acid, sorted
func (t *Table) SenseCodons() []string {
	return t.filter(func(aaCode byte) bool { return aaCode != Stop })
}

func (t *Table) filter(keep func(byte) bool) []string {
	codons := make([]string, 0, len(t.codons))
	for codon, aaCode := range t.codons {
		if keep(aaCode) {
			codons = append(codons, codon)
		}
	}
	sort.Strings(codons)
	return codons
}
