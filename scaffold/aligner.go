package scaffold

import "context"

// Aligner is the minimum interface an external sequence aligner must
// provide to drive the refinement loop. Both operations are synchronous
// and work on local files; a nonzero tool exit surfaces as
// ErrExternalTool.
type Aligner interface {
	// Name identifies the backend, e.g. "bwa".
	Name() string
	// Index builds on-disk index artifacts adjacent to the reference.
	Index(ctx context.Context, referenceFile string) error
	// Align maps reads against the reference and writes SAM to samFile.
	// onlyPrimary suppresses supplementary and secondary alignments.
	Align(ctx context.Context, referenceFile, readsFile, samFile string, onlyPrimary bool) error
}
