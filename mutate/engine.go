// Package mutate explores single codon mutations: it translates a codon
// and ranks every possible amino acid substitution by its BLOSUM62 score.
package mutate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/feliixx/gomutation/blosum"
	"github.com/feliixx/gomutation/ncbicode"
	"github.com/feliixx/gomutation/residue"
	"gonum.org/v1/gonum/stat"
)

// ErrNotAlternative is returned when selecting a residue that is
// not a candidate substitute of the query
var ErrNotAlternative = errors.New("not a substitute candidate")

var standardEngine = &Engine{
	table:  ncbicode.StandardTable(),
	matrix: blosum.Blosum62,
}

// Engine validates and analyses codons for one genetic code.
// It holds no mutable state and is safe for concurrent use
type Engine struct {
	table  *ncbicode.Table
	matrix *blosum.Matrix
}

// NewEngine returns an Engine using the genetic code selected in options
func NewEngine(options Options) (*Engine, error) {
	table, err := ncbicode.LoadTable(options.Table)
	if err != nil {
		return nil, err
	}
	return &Engine{
		table:  table,
		matrix: blosum.Blosum62,
	}, nil
}

// Table returns the genetic code of the engine
func (e *Engine) Table() *ncbicode.Table {
	return e.table
}

// Result is the analysis of a single codon
type Result struct {
	Codon  Codon
	Source residue.Code
	// Default is the most conservative substitute, Alternatives[0].Residue
	Default residue.Code
	// Alternatives holds the 19 other canonical residues, by
	// decreasing score then by code
	Alternatives []blosum.Neighbor
}

// Analyze translates codon and ranks all the substitutes of the encoded
// amino acid. codon has to come from Validate, any other codon fails
// with ErrUnknownCodon
func (e *Engine) Analyze(codon Codon) (Result, error) {

	aaCode, err := e.table.Translate(string(codon))
	if err != nil {
		return Result{}, err
	}
	source := residue.Code(aaCode)

	ranked, err := e.rank(source)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Codon:        codon,
		Source:       source,
		Default:      ranked[0].Residue,
		Alternatives: ranked,
	}, nil
}

// Analyze runs Analyze with the standard genetic code
func Analyze(codon Codon) (Result, error) {
	return standardEngine.Analyze(codon)
}

// DefaultSubstituteFor returns the highest scoring substitute of c.
// Ties are broken by the smallest one-letter code
func (e *Engine) DefaultSubstituteFor(c residue.Code) (residue.Code, error) {
	ranked, err := e.rank(c)
	if err != nil {
		return 0, err
	}
	return ranked[0].Residue, nil
}

// Query validates and analyses raw. selected is the substitute currently
// shown by the caller, 0 if none. The returned selection is selected
// unless it is 0 or the new source residue, in which case it is replaced
// by the default substitute.
// On error, selected is returned unchanged
func (e *Engine) Query(raw string, selected residue.Code) (Result, residue.Code, error) {

	if selected != 0 && !residue.IsCanonical(selected) {
		return Result{}, selected, fmt.Errorf("invalid selection: %w: %q", residue.ErrUnknownResidue, selected.String())
	}

	codon, err := e.Validate(raw)
	if err != nil {
		return Result{}, selected, err
	}
	result, err := e.Analyze(codon)
	if err != nil {
		return Result{}, selected, err
	}

	if selected == 0 || selected == result.Source {
		selected = result.Default
	}
	return result, selected, nil
}

func (e *Engine) rank(source residue.Code) ([]blosum.Neighbor, error) {

	neighbors, err := e.matrix.Neighbors(source)
	if err != nil {
		return nil, err
	}
	if len(neighbors) == 0 {
		return nil, fmt.Errorf("no substitute for %s", source)
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Score != neighbors[j].Score {
			return neighbors[i].Score > neighbors[j].Score
		}
		return neighbors[i].Residue < neighbors[j].Residue
	})
	return neighbors, nil
}

// Select returns c if it is one of the alternatives of r
func (r Result) Select(c residue.Code) (residue.Code, error) {
	for _, n := range r.Alternatives {
		if n.Residue == c {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q for %s", ErrNotAlternative, c.String(), r.Source)
}

// Score returns the score of c as a substitute, and false if c is
// not an alternative
func (r Result) Score(c residue.Code) (int, bool) {
	for _, n := range r.Alternatives {
		if n.Residue == c {
			return n.Score, true
		}
	}
	return 0, false
}

// Scores returns the scores of the alternatives, in rank order
func (r Result) Scores() []float64 {
	scores := make([]float64, len(r.Alternatives))
	for i, n := range r.Alternatives {
		scores[i] = float64(n.Score)
	}
	return scores
}

// MeanScore returns the mean score of all the alternatives
func (r Result) MeanScore() float64 {
	return stat.Mean(r.Scores(), nil)
}
