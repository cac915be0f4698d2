package scaffold

import "github.com/grailbio/base/log"

// extensionMVRealign emits consensus bases from a set of overhangs, one
// per step, by majority vote at the current cursor across all live
// overhangs. After each emission every overhang is realigned locally
// against the emitted base and the look-ahead majority, so a read knocked
// out of phase by a one-base indel can rejoin on the next step without a
// global realignment. Overhang cursors and dropped flags are mutated in
// place; survivors keep their state across refinement iterations.
//
// The emitted string is deterministic and invariant under permutation of
// exts: the histograms are commutative and ties resolve to the lowest
// base index.
func extensionMVRealign(exts []Extension, opts Opts) string {
	var out []byte
	for step := 0; ; step++ {
		bases := countBases(exts, nil, 0)
		if bases.Coverage < opts.MinCoverage {
			log.Debug.Printf("step %d: coverage %d below %d, stopping", step, bases.Coverage, opts.MinCoverage)
			break
		}
		outputBase := IdxToBase(bases.MaxIdx)

		// Look-ahead vote, restricted to overhangs agreeing with the
		// tentative emission. Failing this gate stops the walk without
		// emitting outputBase.
		next := countBases(exts, func(c byte) bool { return c == outputBase }, 1)
		if float64(next.Coverage) < opts.LookaheadCoverageFactor*float64(opts.MinCoverage) {
			log.Debug.Printf("step %d: look-ahead coverage %d below %g, stopping",
				step, next.Coverage, opts.LookaheadCoverageFactor*float64(opts.MinCoverage))
			break
		}
		out = append(out, outputBase)
		nextMv := IdxToBase(next.MaxIdx)
		log.Debug.Printf("step %d: emit %c counts %v next %c", step, outputBase, bases.Count, nextMv)

		for j := range exts {
			e := &exts[j]
			if e.Dropped {
				continue
			}
			// Fewer than two bases left: the overhang can no longer
			// support the two-base vote.
			if e.pos+1 >= len(e.Seq) {
				e.Dropped = true
				continue
			}
			curr, peek := e.Seq[e.pos], e.Seq[e.pos+1]
			switch {
			case curr == outputBase:
				e.apply(opMatch)
			case curr == nextMv:
				// The consensus carries a base this read lacks.
				e.apply(opDeletion)
			case peek == nextMv:
				e.apply(opMismatch)
			case peek == outputBase:
				// The read carries an extra base.
				e.apply(opInsertion)
			default:
				e.Dropped = true
			}
		}
	}
	return string(out)
}

// extensionMVSimple is the plain majority-vote kernel: emit the argmax at
// the cursor while coverage holds, advancing every live overhang by one.
// No look-ahead, no realignment.
func extensionMVSimple(exts []Extension, opts Opts) string {
	var out []byte
	for step := 0; ; step++ {
		bases := countBases(exts, nil, 0)
		if bases.Coverage < opts.MinCoverage {
			log.Debug.Printf("step %d: coverage %d below %d, stopping", step, bases.Coverage, opts.MinCoverage)
			break
		}
		out = append(out, IdxToBase(bases.MaxIdx))
		for j := range exts {
			e := &exts[j]
			if e.Dropped {
				continue
			}
			if e.pos+1 >= len(e.Seq) {
				e.Dropped = true
				continue
			}
			e.apply(opMatch)
		}
	}
	return string(out)
}

// walkExtension dispatches on the configured consensus mode. POA never
// reaches the walker: ExtendContigPOA short-circuits it.
func walkExtension(exts []Extension, opts Opts) string {
	if opts.ConsensusMode == MVSimple {
		return extensionMVSimple(exts, opts)
	}
	return extensionMVRealign(exts, opts)
}
