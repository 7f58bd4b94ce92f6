package mutate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/feliixx/gomutation/ncbicode"
)

const codonLength = 3

// errors caused by user input. The query can be retried
// with a different codon
var (
	ErrInvalidLength     = errors.New("codon must be exactly 3 nucleotides long")
	ErrInvalidNucleotide = errors.New("invalid RNA codon (use A, U, G, C only)")
	ErrStopCodon         = errors.New("stop codon does not encode an amino acid")
)

// ErrUnknownCodon is returned by Analyze for a codon that did not go
// through Validate
var ErrUnknownCodon = ncbicode.ErrUnknownCodon

// Codon is an uppercase RNA codon accepted by Validate
type Codon string

// Validate checks that raw is a sense codon of the engine genetic code.
// raw is case insensitive. Checks are run in this order, the first
// failing one is reported:
//
//   - length is 3
//   - only A, U, G and C
//   - not a stop codon
func (e *Engine) Validate(raw string) (Codon, error) {

	codon := strings.ToUpper(raw)

	if utf8.RuneCountInString(codon) != codonLength {
		return "", fmt.Errorf("invalid codon %q: %w", raw, ErrInvalidLength)
	}
	for i := 0; i < len(codon); i++ {
		switch codon[i] {
		case 'A', 'U', 'G', 'C':
		default:
			return "", fmt.Errorf("invalid codon %q: %w", raw, ErrInvalidNucleotide)
		}
	}
	if e.table.IsStop(codon) {
		return "", fmt.Errorf("invalid codon %q: %w", raw, ErrStopCodon)
	}
	return Codon(codon), nil
}

// Validate checks raw against the standard genetic code
func Validate(raw string) (Codon, error) {
	return standardEngine.Validate(raw)
}
