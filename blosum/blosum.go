// Package blosum provides the BLOSUM62 amino acid substitution matrix.
//
// The matrix is read from the NCBI text file bundled in the binary:
//
//	https://ftp.ncbi.nlm.nih.gov/blast/matrices/BLOSUM62
package blosum

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feliixx/gomutation/residue"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownSymbol is returned when scoring a symbol absent
// from the matrix alphabet
var ErrUnknownSymbol = errors.New("symbol not in matrix alphabet")

//go:embed blosum62.txt
var blosum62 string

// Blosum62 is the BLOSUM62 matrix. Its alphabet also holds the
// ambiguity codes B, Z, X and the stop symbol '*'
var Blosum62 = mustParse(blosum62)

// Neighbor is a candidate substitute with its score against a source residue
type Neighbor struct {
	Residue residue.Code
	Score   int
}

// Matrix is a symmetric substitution matrix. Only the upper triangle
// is stored, so Score(a, b) and Score(b, a) always read the same cell
type Matrix struct {
	alphabet []byte
	index    map[byte]int
	scores   *mat.SymDense
}

// Alphabet returns the symbols of the matrix, in file order
func (m *Matrix) Alphabet() []byte {
	return append([]byte(nil), m.alphabet...)
}

// Score returns the substitution score of a by b
func (m *Matrix) Score(a, b residue.Code) (int, error) {
	i, ok := m.index[byte(a)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a.String())
	}
	j, ok := m.index[byte(b)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b.String())
	}
	return int(m.scores.At(i, j)), nil
}

// Neighbors returns the score of a against every other canonical
// residue, in matrix order. Non canonical symbols of the alphabet
// are skipped
func (m *Matrix) Neighbors(a residue.Code) ([]Neighbor, error) {

	if !residue.IsCanonical(a) {
		return nil, fmt.Errorf("%w: %q", residue.ErrUnknownResidue, a.String())
	}
	i, ok := m.index[byte(a)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, a.String())
	}

	neighbors := make([]Neighbor, 0, len(m.alphabet))
	for j, symbol := range m.alphabet {
		c := residue.Code(symbol)
		if c == a || !residue.IsCanonical(c) {
			continue
		}
		neighbors = append(neighbors, Neighbor{Residue: c, Score: int(m.scores.At(i, j))})
	}
	return neighbors, nil
}

func mustParse(s string) *Matrix {
	m, err := parse(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid bundled matrix: %v", err))
	}
	return m
}

// parse reads a matrix in NCBI format:
//
//	# comment
//	   A  R  N ...
//	A  4 -1 -2 ...
//	R -1  5  0 ...
//
// rows have to be in the same order as the header columns
func parse(r io.Reader) (*Matrix, error) {

	scanner := bufio.NewScanner(r)

	var alphabet []byte
	var data []float64
	row := 0

	for scanner.Scan() {

		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		if alphabet == nil {
			for _, f := range fields {
				if len(f) != 1 {
					return nil, fmt.Errorf("invalid symbol in header: %s", f)
				}
				alphabet = append(alphabet, f[0])
			}
			data = make([]float64, 0, len(alphabet)*len(alphabet))
			continue
		}

		if row == len(alphabet) {
			return nil, fmt.Errorf("too many rows, expected %d", len(alphabet))
		}
		if len(fields) != len(alphabet)+1 {
			return nil, fmt.Errorf("row %s: expected %d scores, got %d", fields[0], len(alphabet), len(fields)-1)
		}
		if len(fields[0]) != 1 || fields[0][0] != alphabet[row] {
			return nil, fmt.Errorf("row %d: expected symbol %c, got %s", row, alphabet[row], fields[0])
		}
		for _, f := range fields[1:] {
			score, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %s: %v", fields[0], err)
			}
			data = append(data, float64(score))
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if alphabet == nil {
		return nil, errors.New("missing header line")
	}
	if row != len(alphabet) {
		return nil, fmt.Errorf("expected %d rows, got %d", len(alphabet), row)
	}

	n := len(alphabet)
	index := make(map[byte]int, n)
	for i, symbol := range alphabet {
		if _, dup := index[symbol]; dup {
			return nil, fmt.Errorf("duplicated symbol %c", symbol)
		}
		index[symbol] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if data[i*n+j] != data[j*n+i] {
				return nil, fmt.Errorf("matrix is not symmetric: %c/%c = %v, %c/%c = %v",
					alphabet[i], alphabet[j], data[i*n+j], alphabet[j], alphabet[i], data[j*n+i])
			}
		}
	}

	return &Matrix{
		alphabet: alphabet,
		index:    index,
		scores:   mat.NewSymDense(n, data),
	}, nil
}
