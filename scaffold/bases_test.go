package scaffold

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseConversion(t *testing.T) {
	for want, c := range []byte{'A', 'T', 'G', 'C'} {
		idx, err := BaseToIdx(c)
		assert.NoError(t, err)
		expect.EQ(t, idx, want)
		expect.EQ(t, IdxToBase(idx), c)

		idx, err = BaseToIdx(c + 'a' - 'A')
		assert.NoError(t, err)
		expect.EQ(t, idx, want)
	}
	for _, c := range []byte{'N', 'n', '-', 'U', 0} {
		_, err := BaseToIdx(c)
		assert.Equal(t, ErrInvalidBase, errors.Cause(err))
	}
}

func extensionsOf(seqs ...string) []Extension {
	exts := make([]Extension, len(seqs))
	for i, s := range seqs {
		exts[i] = NewExtension(ReadID(i), s, false)
	}
	return exts
}

func TestCountBases(t *testing.T) {
	exts := extensionsOf("AT", "AG", "TG", "CC")
	c := countBases(exts, nil, 0)
	expect.EQ(t, c.Count, [NumBases]int{2, 1, 0, 1})
	expect.EQ(t, c.Coverage, 4)
	expect.EQ(t, c.MaxIdx, BaseA)
}

func TestCountBasesTieLowestIndex(t *testing.T) {
	// T and G tie; T has the lower index.
	c := countBases(extensionsOf("T", "T", "G", "G"), nil, 0)
	expect.EQ(t, c.MaxIdx, BaseT)

	// Four-way tie resolves to A.
	c = countBases(extensionsOf("A", "T", "G", "C"), nil, 0)
	expect.EQ(t, c.MaxIdx, BaseA)
}

func TestCountBasesGapsAndBounds(t *testing.T) {
	exts := extensionsOf("AN", "A")
	// N never contributes to a count.
	c := countBases(exts, nil, 1)
	expect.EQ(t, c.Coverage, 0)

	// Dropped overhangs contribute nothing.
	exts[0].Dropped = true
	c = countBases(exts, nil, 0)
	expect.EQ(t, c.Coverage, 1)

	// Offsets past the end of an overhang are skipped, not read.
	c = countBases(extensionsOf("A"), nil, 5)
	expect.EQ(t, c.Coverage, 0)
}

func TestCountBasesEligibility(t *testing.T) {
	exts := extensionsOf("AC", "AG", "TG")
	c := countBases(exts, func(b byte) bool { return b == 'A' }, 1)
	expect.EQ(t, c.Coverage, 2)
	expect.EQ(t, c.Count[BaseC], 1)
	expect.EQ(t, c.Count[BaseG], 1)
}
