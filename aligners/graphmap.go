package aligners

import (
	"context"
	"strconv"
)

// graphmap drives the GraphMap long-read mapper. GraphMap reports primary
// alignments only, so onlyPrimary needs no extra flag.
type graphmap struct {
	readType ReadType
	threads  int
}

func (g *graphmap) Name() string { return "graphmap" }

// Index precomputes the GraphMap index (written next to the reference as
// <reference>.gmidx).
func (g *graphmap) Index(ctx context.Context, referenceFile string) error {
	return run(ctx, nil, "graphmap", "align", "-I", "-r", referenceFile)
}

// Align maps readsFile against referenceFile, writing SAM to samFile.
func (g *graphmap) Align(ctx context.Context, referenceFile, readsFile, samFile string, onlyPrimary bool) error {
	argv := []string{"graphmap", "align",
		"-t", strconv.Itoa(g.threads),
		"-r", referenceFile,
		"-d", readsFile,
		"-o", samFile,
	}
	if g.readType == ONT {
		argv = append(argv, "-x", "nanopore")
	}
	return run(ctx, nil, argv...)
}
