package scaffold

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReverseString(t *testing.T) {
	expect.EQ(t, reverseString(""), "")
	expect.EQ(t, reverseString("A"), "A")
	expect.EQ(t, reverseString("ACGT"), "TGCA")
	expect.EQ(t, reverseString("TTTAAA"), "AAATTT")
}

func TestReverseComplement(t *testing.T) {
	expect.EQ(t, ReverseComplement("ACGT"), "ACGT")
	expect.EQ(t, ReverseComplement("AACC"), "GGTT")
	expect.EQ(t, ReverseComplement("acgt"), "ACGT")
	expect.EQ(t, ReverseComplement("ANA"), "TNT")
}
