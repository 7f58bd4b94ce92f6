package ncbicode_test

import (
	"testing"

	"github.com/feliixx/gomutation/ncbicode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardTable(t *testing.T) {

	table := ncbicode.StandardTable()

	assert.Equal(t, []string{"UAA", "UAG", "UGA"}, table.StopCodons())
	assert.Len(t, table.SenseCodons(), 61)

	for _, codon := range table.StopCodons() {
		assert.True(t, table.IsStop(codon))
		_, err := table.Translate(codon)
		assert.ErrorIs(t, err, ncbicode.ErrUnknownCodon)
	}

	for _, codon := range table.SenseCodons() {
		assert.False(t, table.IsStop(codon))
		aaCode, err := table.Translate(codon)
		require.NoError(t, err)
		assert.Contains(t, "ACDEFGHIKLMNPQRSTVWY", string(aaCode))
	}
}

func TestTranslate(t *testing.T) {

	tests := []struct {
		codon  string
		aaCode byte
	}{
		{"AUG", 'M'},
		{"UUU", 'F'},
		{"GGG", 'G'},
		{"UGG", 'W'},
		{"AGA", 'R'},
		{"CUG", 'L'},
		{"UGU", 'C'},
	}

	table := ncbicode.StandardTable()
	for _, tt := range tests {
		test := tt
		t.Run(test.codon, func(t *testing.T) {
			aaCode, err := table.Translate(test.codon)
			require.NoError(t, err)
			assert.Equal(t, test.aaCode, aaCode)
		})
	}
}

func TestTranslateUnknown(t *testing.T) {

	table := ncbicode.StandardTable()
	for _, codon := range []string{"", "AU", "AUGG", "aug", "ATG", "NNN"} {
		_, err := table.Translate(codon)
		assert.ErrorIs(t, err, ncbicode.ErrUnknownCodon, codon)
		assert.False(t, table.IsStop(codon))
	}
}

func TestLoadTable(t *testing.T) {

	for _, code := range []int{ncbicode.Standard, ncbicode.StandardNCBI} {
		table, err := ncbicode.LoadTable(code)
		require.NoError(t, err)
		assert.Same(t, ncbicode.StandardTable(), table)
	}

	tests := []struct {
		name  string
		code  int
		codon string
		// 0 for stop codon
		aaCode byte
		stops  []string
	}{
		{"vertebrate mitochondrial", ncbicode.VertebrateMitochondrial, "UGA", 'W', []string{"AGA", "AGG", "UAA", "UAG"}},
		{"yeast mitochondrial", ncbicode.YeastMitochondrial, "CUU", 'T', []string{"UAA", "UAG"}},
		{"ciliate", ncbicode.CiliateDasycladaceanHexamita, "UAA", 'Q', []string{"UGA"}},
		{"euplotid", ncbicode.Euplotid, "UGA", 'C', []string{"UAA", "UAG"}},
		{"plastid", ncbicode.BacterialArchaealPlantPlastid, "AUG", 'M', []string{"UAA", "UAG", "UGA"}},
		{"scenedesmus", ncbicode.ScenedesmusObliquusMitochondrial, "UCA", 0, []string{"UAA", "UCA", "UGA"}},
		{"thraustochytrium", ncbicode.ThraustochytriumMitochondrial, "UUA", 0, []string{"UAA", "UAG", "UGA", "UUA"}},
		{"pterobranchia", ncbicode.PterobranchiaMitochondrial, "AGG", 'K', []string{"UAA", "UAG"}},
		{"peritrich", ncbicode.Peritrich, "UAG", 'E', []string{"UGA"}},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {

			table, err := ncbicode.LoadTable(test.code)
			require.NoError(t, err)
			assert.Equal(t, test.code, table.ID())
			assert.Equal(t, test.stops, table.StopCodons())
			assert.Len(t, table.SenseCodons(), 64-len(test.stops))

			aaCode, err := table.Translate(test.codon)
			if test.aaCode == 0 {
				assert.ErrorIs(t, err, ncbicode.ErrUnknownCodon)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.aaCode, aaCode)
		})
	}

	// the standard table is left untouched by the diffs
	aaCode, err := ncbicode.StandardTable().Translate("AGA")
	require.NoError(t, err)
	assert.Equal(t, byte('R'), aaCode)
}

func TestLoadTableInvalid(t *testing.T) {

	for _, code := range []int{-1, 7, 8, 15, 31} {
		_, err := ncbicode.LoadTable(code)
		assert.Error(t, err)
	}
}
