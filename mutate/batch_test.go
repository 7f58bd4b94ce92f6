package mutate_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/feliixx/gomutation/mutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchInput = `# codons to analyse
AUG

> second group
uaa
xyz
  GGG
AU
`

const batchExpected = "AUG\tM\tL\tL:2,I:1,V:1,F:0,Q:0,A:-1,C:-1,K:-1,R:-1,S:-1,T:-1,W:-1,Y:-1,E:-2,H:-2,N:-2,P:-2,D:-3,G:-3\n" +
	"uaa\terror\tinvalid codon \"uaa\": stop codon does not encode an amino acid\n" +
	"xyz\terror\tinvalid codon \"xyz\": invalid RNA codon (use A, U, G, C only)\n" +
	"GGG\tG\tA\tA:0,N:0,S:0,D:-1,E:-2,H:-2,K:-2,P:-2,Q:-2,R:-2,T:-2,W:-2,C:-3,F:-3,M:-3,V:-3,Y:-3,I:-4,L:-4\n" +
	"AU\terror\tinvalid codon \"AU\": codon must be exactly 3 nucleotides long\n"

func TestAnalyzeBatch(t *testing.T) {

	for _, numWorker := range []int{1, 2, 8} {

		out := bytes.NewBuffer(nil)
		err := mutate.AnalyzeBatch(strings.NewReader(batchInput), out, mutate.Options{NumWorker: numWorker})
		require.NoError(t, err)

		if want, got := batchExpected, out.String(); want != got {
			t.Errorf("with %d workers, expected\n%s\nbut got\n%s\n", numWorker, want, got)
		}
	}
}

func TestAnalyzeBatchOrder(t *testing.T) {

	var in strings.Builder
	codons := []string{"AUG", "UUU", "GGG", "UGG", "CAA"}
	for i := 0; i < 500; i++ {
		in.WriteString(codons[i%len(codons)])
		in.WriteByte('\n')
	}

	out := bytes.NewBuffer(nil)
	err := mutate.AnalyzeBatch(strings.NewReader(in.String()), out, mutate.Options{NumWorker: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 500)
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, codons[i%len(codons)]+"\t"), "line %d: %s", i, line)
	}
}

func TestAnalyzeBatchEmpty(t *testing.T) {

	out := bytes.NewBuffer(nil)
	err := mutate.AnalyzeBatch(strings.NewReader("# nothing\n\n"), out, mutate.Options{})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestAnalyzeBatchInvalidTable(t *testing.T) {

	err := mutate.AnalyzeBatch(strings.NewReader("AUG\n"), bytes.NewBuffer(nil), mutate.Options{Table: 42})
	assert.EqualError(t, err, "invalid table code: 42")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestAnalyzeBatchWriteError(t *testing.T) {

	err := mutate.AnalyzeBatch(strings.NewReader("AUG\n"), failingWriter{}, mutate.Options{NumWorker: 1})
	assert.EqualError(t, err, "fail to write to output file: disk full")
}

func TestAnalyzeBatchLongLine(t *testing.T) {

	long := strings.Repeat("A", 70*1024)
	in := "AUG\n" + long + "\nGGG\n" + strings.Repeat("U", 4096)

	out := bytes.NewBuffer(nil)
	err := mutate.AnalyzeBatch(strings.NewReader(in), out, mutate.Options{NumWorker: 2})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "AUG\tM\tL\t"), lines[0])
	assert.Equal(t, "AAAAAAAAAAAAAAAA...\terror\tinvalid codon \"AAAAAAAAAAAAAAAA...\": codon must be exactly 3 nucleotides long", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "GGG\tG\tA\t"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], strings.Repeat("U", 4096)+"\terror\t"))
}

func TestAnalyzeBatchTabInCodon(t *testing.T) {

	out := bytes.NewBuffer(nil)
	err := mutate.AnalyzeBatch(strings.NewReader("A\tUG\n"), out, mutate.Options{NumWorker: 1})
	require.NoError(t, err)

	line := strings.TrimSuffix(out.String(), "\n")
	assert.Len(t, strings.Split(line, "\t"), 3)
	assert.Equal(t, `A\tUG`+"\terror\tinvalid codon \"A\\tUG\": codon must be exactly 3 nucleotides long", line)
}
