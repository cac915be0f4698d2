package scaffold

import "github.com/pkg/errors"

// Nucleotide indices. The order is load-bearing: the walker breaks count
// ties by the lowest index, so A < T < G < C.
const (
	BaseA = iota
	BaseT
	BaseG
	BaseC
)

// NumBases is the number of regular base types.
const NumBases = 4

var idxToBaseTable = [NumBases]byte{'A', 'T', 'G', 'C'}

var baseToIdxTable [256]int8

func init() {
	for i := range baseToIdxTable {
		baseToIdxTable[i] = -1
	}
	for idx, c := range idxToBaseTable {
		baseToIdxTable[c] = int8(idx)
		baseToIdxTable[c+'a'-'A'] = int8(idx)
	}
}

// BaseToIdx converts a nucleotide character to its index. Characters
// outside {A,T,G,C} (either case) yield ErrInvalidBase; counting code
// treats them as gaps.
func BaseToIdx(base byte) (int, error) {
	idx := baseToIdxTable[base]
	if idx < 0 {
		return 0, errors.Wrapf(ErrInvalidBase, "base %q", base)
	}
	return int(idx), nil
}

// IdxToBase converts a base index back to its nucleotide character. idx
// must come from BaseToIdx or BaseCounter.MaxIdx.
func IdxToBase(idx int) byte {
	return idxToBaseTable[idx]
}

// BaseCounter is a histogram of bases observed at one walker position.
type BaseCounter struct {
	Count [NumBases]int
	// Coverage is the number of finite counts, i.e. the sum over Count.
	Coverage int
	// MaxIdx is the argmax over Count, ties broken by the lowest index.
	MaxIdx int
}

// countBases samples seq[pos+offset] of every live overhang and bins the
// observed bases. eligible, when non-nil, filters overhangs by their
// *current* base before sampling (the look-ahead vote only polls reads
// that agreed with the emitted base). Positions past an overhang's end and
// non-ATGC characters contribute nothing, so the histogram is safe against
// cursors pushed past the end by an insertion.
func countBases(exts []Extension, eligible func(byte) bool, offset int) BaseCounter {
	var c BaseCounter
	for i := range exts {
		e := &exts[i]
		if e.Dropped {
			continue
		}
		pos := e.pos + offset
		if pos >= len(e.Seq) {
			continue
		}
		if eligible != nil && !eligible(e.Seq[e.pos]) {
			continue
		}
		idx, err := BaseToIdx(e.Seq[pos])
		if err != nil {
			continue
		}
		c.Count[idx]++
	}
	for idx, n := range c.Count {
		c.Coverage += n
		if n > c.Count[c.MaxIdx] {
			c.MaxIdx = idx
		}
	}
	return c
}
