package scaffold

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// CIGAR geometry. The read-consumption set matches CigarOpType.Consumes,
// but the contig set deliberately excludes N: a skipped region does not
// anchor a read to contig bases for extension purposes.

// consumesRead reports whether op advances the position in the read
// sequence: M, I, S, X and =.
func consumesRead(op sam.CigarOpType) int {
	switch op {
	case sam.CigarMatch, sam.CigarInsertion, sam.CigarSoftClipped, sam.CigarMismatch, sam.CigarEqual:
		return 1
	}
	return 0
}

// consumesContig reports whether op advances the position on the contig:
// M, D, X and =.
func consumesContig(op sam.CigarOpType) int {
	switch op {
	case sam.CigarMatch, sam.CigarDeletion, sam.CigarMismatch, sam.CigarEqual:
		return 1
	}
	return 0
}

// alignmentSpans returns the number of read bases and contig bases the
// CIGAR walks over. An alignment with begin position B occupies contig
// positions [B, B+usedContig).
func alignmentSpans(c sam.Cigar) (usedRead, usedContig int) {
	for _, op := range c {
		usedRead += op.Len() * consumesRead(op.Type())
		usedContig += op.Len() * consumesContig(op.Type())
	}
	return usedRead, usedContig
}

// leadingSoftClip returns the length of the soft clip opening the CIGAR,
// or 0.
func leadingSoftClip(c sam.Cigar) int {
	if len(c) > 0 && c[0].Type() == sam.CigarSoftClipped {
		return c[0].Len()
	}
	return 0
}

// trailingSoftClip returns the length of the soft clip closing the CIGAR,
// or 0.
func trailingSoftClip(c sam.Cigar) int {
	if n := len(c); n > 0 && c[n-1].Type() == sam.CigarSoftClipped {
		return c[n-1].Len()
	}
	return 0
}

// validateRecord checks a record's CIGAR against its sequence. Violations
// are per-record: the caller skips the record and moves on.
func validateRecord(rec *sam.Record, seqLen int) error {
	for _, op := range rec.Cigar {
		if op.Len() <= 0 {
			return errors.Wrapf(ErrMalformedAlignment, "read %s: cigar op %v with count %d",
				rec.Name, op.Type(), op.Len())
		}
	}
	usedRead, _ := alignmentSpans(rec.Cigar)
	if seqLen < usedRead {
		return errors.Wrapf(ErrMalformedAlignment, "read %s: sequence length %d < %d required by cigar",
			rec.Name, seqLen, usedRead)
	}
	return nil
}
