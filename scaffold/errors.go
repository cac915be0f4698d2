package scaffold

import "errors"

// Error kinds. Callers classify failures with errors.Cause comparisons
// against these sentinels; sites attach context with pkg/errors wrapping.
var (
	// ErrInvalidConfig marks a tunable outside its allowed range. Raised at
	// configuration time and fatal for the pipeline.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIO marks a failed FASTA or SAM read/write.
	ErrIO = errors.New("i/o failure")

	// ErrMalformedAlignment marks an alignment record whose CIGAR is
	// inconsistent with its sequence. The record is skipped, never fatal.
	ErrMalformedAlignment = errors.New("malformed alignment record")

	// ErrExternalTool marks a nonzero exit from an external aligner. Fatal
	// for the current contig only.
	ErrExternalTool = errors.New("external tool failure")

	// ErrInvalidBase marks a character outside {A,T,G,C} in base-to-index
	// conversion. Counting code treats such bases as gaps.
	ErrInvalidBase = errors.New("invalid base")
)
