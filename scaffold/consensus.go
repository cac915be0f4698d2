package scaffold

import "github.com/grailbio/base/log"

// Consensus is a pluggable consensus kernel over raw overhang strings.
// The partial-order-alignment backend implements this; the engine never
// looks inside it.
type Consensus interface {
	Consensus(seqs []string) (string, error)
}

// gatherSequences collects the non-empty overhang strings, truncated to
// maxExt, in input order.
func gatherSequences(exts []Extension, maxExt int) []string {
	var seqs []string
	for i := range exts {
		if exts[i].Seq == "" {
			continue
		}
		s := exts[i].Seq
		if len(s) > maxExt {
			s = s[:maxExt]
		}
		seqs = append(seqs, s)
	}
	return seqs
}

// ExtendContigPOA extends both contig ends in a single shot using the
// injected consensus kernel: no walker iteration, no coverage gate, no
// refinement loop. Left overhangs are stored reversed, so the left
// consensus is re-reversed before prepending.
func ExtendContigPOA(contig *Contig, left, right []Extension, cons Consensus, opts Opts) error {
	log.Printf("%s: running left extension consensus", contig.Name)
	leftExt, err := cons.Consensus(gatherSequences(left, opts.MaxExt))
	if err != nil {
		return err
	}
	leftExt = reverseString(leftExt)

	log.Printf("%s: running right extension consensus", contig.Name)
	rightExt, err := cons.Consensus(gatherSequences(right, opts.MaxExt))
	if err != nil {
		return err
	}

	contig.Seq = leftExt + contig.Seq + rightExt
	contig.LeftExt += len(leftExt)
	contig.RightExt += len(rightExt)
	return nil
}
