package scaffold

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func cigar(ops ...sam.CigarOp) sam.Cigar { return sam.Cigar(ops) }

func TestAlignmentSpans(t *testing.T) {
	c := cigar(
		sam.NewCigarOp(sam.CigarSoftClipped, 5),
		sam.NewCigarOp(sam.CigarMatch, 10),
		sam.NewCigarOp(sam.CigarInsertion, 2),
		sam.NewCigarOp(sam.CigarDeletion, 3),
		sam.NewCigarOp(sam.CigarMismatch, 1),
		sam.NewCigarOp(sam.CigarEqual, 4),
		sam.NewCigarOp(sam.CigarSoftClipped, 7),
	)
	usedRead, usedContig := alignmentSpans(c)
	expect.EQ(t, usedRead, 5+10+2+1+4+7)
	expect.EQ(t, usedContig, 10+3+1+4)
	expect.EQ(t, leadingSoftClip(c), 5)
	expect.EQ(t, trailingSoftClip(c), 7)
}

func TestSpansSkipNonConsuming(t *testing.T) {
	c := cigar(
		sam.NewCigarOp(sam.CigarHardClipped, 9),
		sam.NewCigarOp(sam.CigarMatch, 10),
		sam.NewCigarOp(sam.CigarSkipped, 50),
		sam.NewCigarOp(sam.CigarPadded, 2),
		sam.NewCigarOp(sam.CigarMatch, 5),
	)
	usedRead, usedContig := alignmentSpans(c)
	expect.EQ(t, usedRead, 15)
	// N does not anchor the read to contig bases here.
	expect.EQ(t, usedContig, 15)
	expect.EQ(t, leadingSoftClip(c), 0)
	expect.EQ(t, trailingSoftClip(c), 0)
}

func TestValidateRecord(t *testing.T) {
	rec := &sam.Record{
		Name:  "r1",
		Cigar: cigar(sam.NewCigarOp(sam.CigarSoftClipped, 4), sam.NewCigarOp(sam.CigarMatch, 6)),
	}
	assert.NoError(t, validateRecord(rec, 10))

	// Sequence shorter than the CIGAR requires.
	err := validateRecord(rec, 9)
	assert.Equal(t, ErrMalformedAlignment, errors.Cause(err))

	// Zero-length op.
	rec.Cigar = cigar(sam.NewCigarOp(sam.CigarMatch, 0))
	err = validateRecord(rec, 10)
	assert.Equal(t, ErrMalformedAlignment, errors.Cause(err))
}
