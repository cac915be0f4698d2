package scaffold

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
)

// FindPossibleExtensions scans alignment records for one contig and
// collects candidate overhangs for both ends. A read whose soft clip
// dangles past a contig end within InnerMargin becomes a live overhang; a
// read ending within OuterMargin but outside InnerMargin is recorded as a
// dropped placeholder so the refinement loop schedules it for realignment.
// Input record order is preserved. Malformed records are skipped. A read
// contributes at most one overhang per side: its first qualifying record.
func FindPossibleExtensions(records []*sam.Record, table *ReadTable, contigLen int, opts Opts) (left, right []Extension) {
	onLeft, onRight := make(map[ReadID]bool), make(map[ReadID]bool)
	for _, rec := range records {
		if rec.Flags&sam.Unmapped != 0 {
			continue
		}
		seqBytes := rec.Seq.Expand()
		if err := validateRecord(rec, len(seqBytes)); err != nil {
			log.Error.Printf("skipping record: %v", err)
			continue
		}
		readID, ok := table.ID(rec.Name)
		if !ok {
			log.Error.Printf("skipping record: read %s not in read table", rec.Name)
			continue
		}
		seq := string(seqBytes)

		// The clipped prefix extends left of the contig start:
		//
		//   contig ->      ------------
		//   read ->   ----------
		if clip := leadingSoftClip(rec.Cigar); clip > 0 && rec.Pos < opts.OuterMargin && clip > rec.Pos && !onLeft[readID] {
			onLeft[readID] = true
			length := clip - rec.Pos
			if rec.Pos < opts.InnerMargin {
				start := 0
				if length > opts.MaxExt {
					start = length - opts.MaxExt
				}
				// Reversed: the left-side walker consumes the overhang
				// moving away from the contig start, right to left.
				left = append(left, NewExtension(readID, reverseString(seq[start:length]), false))
			} else {
				left = append(left, NewExtension(readID, "", true))
			}
		}

		// The clipped suffix extends right of the contig end:
		//
		//   contig ->  ------------
		//   read ->            ----------
		tail := trailingSoftClip(rec.Cigar)
		if tail == 0 || onRight[readID] {
			continue
		}
		usedRead, usedContig := alignmentSpans(rec.Cigar)
		margin := contigLen - (rec.Pos + usedContig)
		length := tail - margin

		// Alignment ends too far from the contig end.
		if margin > opts.OuterMargin {
			continue
		}
		// Read does not dangle past the contig.
		if length <= 0 {
			continue
		}

		onRight[readID] = true
		if margin > opts.InnerMargin {
			right = append(right, NewExtension(readID, "", true))
			continue
		}
		start := usedRead - length
		end := start + opts.MaxExt
		if end > len(seq) {
			end = len(seq)
		}
		right = append(right, NewExtension(readID, seq[start:end], false))
	}
	return left, right
}
