package aligners

import (
	"context"
	"strconv"
)

// bwa drives `bwa index` and `bwa mem` with the long-read technology
// presets (-x pacbio / -x ont2d).
type bwa struct {
	readType ReadType
	threads  int
}

func (b *bwa) Name() string { return "bwa" }

// Index builds the bwa index files next to the reference.
func (b *bwa) Index(ctx context.Context, referenceFile string) error {
	return run(ctx, nil, "bwa", "index", referenceFile)
}

// Align maps readsFile against referenceFile, writing SAM to samFile. bwa
// mem writes SAM to stdout, so the output is redirected to the file here.
// -Y soft-clips supplementary alignments and is passed only when those
// should appear in the output.
func (b *bwa) Align(ctx context.Context, referenceFile, readsFile, samFile string, onlyPrimary bool) error {
	argv := []string{"bwa", "mem", "-t", strconv.Itoa(b.threads), "-x", b.preset()}
	if !onlyPrimary {
		argv = append(argv, "-Y")
	}
	argv = append(argv, referenceFile, readsFile)
	return runToFile(ctx, samFile, argv...)
}

func (b *bwa) preset() string {
	if b.readType == ONT {
		return "ont2d"
	}
	return "pacbio"
}
