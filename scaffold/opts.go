package scaffold

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// ConsensusMode selects the kernel used to call bases from a set of
// overhangs.
type ConsensusMode int

const (
	// MVRealign is the majority-vote walker with per-read local realignment.
	MVRealign ConsensusMode = iota
	// MVSimple is a plain per-position majority vote with no realignment.
	MVSimple
	// POA delegates to an external partial-order-alignment kernel. Single
	// shot; no refinement loop.
	POA
)

// ParseConsensusMode converts a command-line mode name to a ConsensusMode.
func ParseConsensusMode(s string) (ConsensusMode, error) {
	switch s {
	case "mv-realign":
		return MVRealign, nil
	case "mv-simple":
		return MVSimple, nil
	case "poa":
		return POA, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown consensus mode %q", s)
}

func (m ConsensusMode) String() string {
	switch m {
	case MVRealign:
		return "mv-realign"
	case MVSimple:
		return "mv-simple"
	case POA:
		return "poa"
	}
	return "unknown"
}

// Opts bundles the engine tunables. The value is immutable once handed to
// the scaffolder; Validate must pass before any use.
type Opts struct {
	// MaxExt is the upper bound on one-side extension per contig, in bases.
	MaxExt int
	// InnerMargin is the alignment-to-boundary distance below which a
	// dangling read is used directly.
	InnerMargin int
	// OuterMargin is the distance below which a dangling read is kept but
	// flagged for realignment instead of being used directly.
	OuterMargin int
	// MinCoverage is the minimum live-overhang coverage for the walker to
	// keep emitting bases.
	MinCoverage int
	// LookaheadCoverageFactor is the fraction of MinCoverage the look-ahead
	// vote must reach for the current base to be emitted.
	LookaheadCoverageFactor float64
	// Threads is the number of contigs processed concurrently.
	Threads int
	// ConsensusMode selects the consensus kernel.
	ConsensusMode ConsensusMode
	// MinContigLen: contigs shorter than this pass through unextended.
	// Zero disables the check.
	MinContigLen int
	// TempDir is the root under which per-worker scratch directories are
	// created.
	TempDir string
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MaxExt:                  1000,
	InnerMargin:             5,
	OuterMargin:             15,
	MinCoverage:             5,
	LookaheadCoverageFactor: 0.6,
	Threads:                 runtime.NumCPU(),
	ConsensusMode:           MVRealign,
	MinContigLen:            0,
	TempDir:                 os.TempDir(),
}

// Validate checks the tunables against their allowed ranges.
func (o Opts) Validate() error {
	if o.MaxExt <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max-ext must be > 0, got %d", o.MaxExt)
	}
	if o.InnerMargin < 0 {
		return errors.Wrapf(ErrInvalidConfig, "inner-margin must be >= 0, got %d", o.InnerMargin)
	}
	if o.OuterMargin < o.InnerMargin {
		return errors.Wrapf(ErrInvalidConfig, "outer-margin (%d) must be >= inner-margin (%d)",
			o.OuterMargin, o.InnerMargin)
	}
	if o.MinCoverage <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "min-coverage must be > 0, got %d", o.MinCoverage)
	}
	if o.LookaheadCoverageFactor < 0 || o.LookaheadCoverageFactor > 1 {
		return errors.Wrapf(ErrInvalidConfig, "lookahead-coverage-factor must be in [0,1], got %g",
			o.LookaheadCoverageFactor)
	}
	if o.Threads <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "threads must be > 0, got %d", o.Threads)
	}
	if o.MinContigLen < 0 {
		return errors.Wrapf(ErrInvalidConfig, "min-contig-len must be >= 0, got %d", o.MinContigLen)
	}
	return nil
}
