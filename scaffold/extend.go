package scaffold

import (
	"context"
	"path/filepath"

	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"

	"github.com/mculinovic/ONTscaffolder/encoding/fasta"
)

// ExtendContig drives the refinement loop for one contig: walk both ends,
// grow the contig, then hand the reads that fell out of consensus back to
// the aligner against the grown contig and fold the resulting overhangs
// into the next iteration. The contig is mutated in place, so when the
// aligner fails mid-loop the best extension so far is already applied;
// the error is returned for the caller to contain.
//
// workDir scopes the temp FASTA/SAM files and the aligner's index
// artifacts; concurrent contigs must not share it.
func ExtendContig(ctx context.Context, contig *Contig, records []*sam.Record, table *ReadTable, aligner Aligner, workDir string, opts Opts) error {
	left, right := FindPossibleExtensions(records, table, len(contig.Seq), opts)
	shouldExtLeft, shouldExtRight := true, true

	for {
		var leftExt, rightExt string
		if shouldExtLeft {
			leftExt = reverseString(walkExtension(left, opts))
			shouldExtLeft = leftExt != ""
			contig.LeftExt += len(leftExt)
		}
		if shouldExtRight {
			rightExt = walkExtension(right, opts)
			shouldExtRight = rightExt != ""
			contig.RightExt += len(rightExt)
		}
		shouldExtLeft = shouldExtLeft && contig.LeftExt < opts.MaxExt
		shouldExtRight = shouldExtRight && contig.RightExt < opts.MaxExt
		contig.Seq = leftExt + contig.Seq + rightExt

		// Partition both sides into survivors and dropouts. Dropout reads
		// are deduplicated across sides before realignment.
		var (
			droppedIDs []ReadID
			seen       = make(map[ReadID]bool)
		)
		survivors := func(exts []Extension) []Extension {
			live := exts[:0]
			for _, e := range exts {
				if !e.Dropped {
					live = append(live, e)
					continue
				}
				if !seen[e.ReadID] {
					seen[e.ReadID] = true
					droppedIDs = append(droppedIDs, e.ReadID)
				}
			}
			return live
		}
		left = survivors(left)
		right = survivors(right)
		if len(droppedIDs) == 0 {
			return nil
		}

		contigFile := filepath.Join(workDir, "extend_contig.fasta")
		readsFile := filepath.Join(workDir, "realign_reads.fasta")
		samFile := filepath.Join(workDir, "realign.sam")

		if err := fasta.WriteFile(contigFile, []string{contig.Name}, []string{contig.Seq}); err != nil {
			return err
		}
		names := make([]string, len(droppedIDs))
		seqs := make([]string, len(droppedIDs))
		for i, id := range droppedIDs {
			names[i] = table.Name(id)
			seqs[i] = table.Seq(id)
		}
		if err := fasta.WriteFile(readsFile, names, seqs); err != nil {
			return err
		}

		if err := aligner.Index(ctx, contigFile); err != nil {
			return err
		}
		if err := aligner.Align(ctx, contigFile, readsFile, samFile, true); err != nil {
			return err
		}
		realigned, err := ReadSAM(samFile)
		if err != nil {
			return err
		}

		newLeft, newRight := FindPossibleExtensions(realigned, table, len(contig.Seq), opts)
		// A read that still holds a live overhang on a side gets no second one there.
		merge := func(live, fresh []Extension) []Extension {
			held := make(map[ReadID]bool, len(live))
			for _, e := range live {
				held[e.ReadID] = true
			}
			for _, e := range fresh {
				if !held[e.ReadID] {
					live = append(live, e)
				}
			}
			return live
		}
		left, right = merge(left, newLeft), merge(right, newRight)
		log.Debug.Printf("%s: realigned %d reads, %d left / %d right overhangs",
			contig.Name, len(droppedIDs), len(left), len(right))

		if len(left) < opts.MinCoverage && len(right) < opts.MinCoverage {
			return nil
		}
		if !shouldExtLeft && !shouldExtRight {
			return nil
		}
	}
}
