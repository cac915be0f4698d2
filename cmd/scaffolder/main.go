// Command scaffolder extends the ends of draft-assembly contigs into
// their adjacent gaps using long reads (PacBio or Oxford Nanopore).
//
// Usage:
//
//	scaffolder [flags] <draft.fasta> <reads.fasta>
//
// The reads are aligned to the draft with an external mapper (bwa or
// graphmap, which must be on PATH); soft-clipped read tails dangling past
// contig ends are then walked into a per-position consensus that grows
// each contig outward.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/log"

	"github.com/mculinovic/ONTscaffolder/aligners"
	"github.com/mculinovic/ONTscaffolder/scaffold"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: scaffolder [flags] <draft.fasta> <reads.fasta>\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	opts := scaffold.DefaultOpts
	var (
		alignerName   = flag.String("aligner", "bwa", "Aligner backend: bwa or graphmap.")
		readTypeName  = flag.String("read-type", "pacbio", "Sequencing technology of the reads: pacbio or ont.")
		consensusName = flag.String("consensus-mode", scaffold.DefaultOpts.ConsensusMode.String(),
			"Consensus kernel: mv-realign, mv-simple or poa.")
		outPath = flag.String("o", "scaffolder-output.fasta", "Path of the extended assembly FASTA.")
	)
	flag.IntVar(&opts.Threads, "t", opts.Threads, "Number of contigs processed concurrently.")
	flag.IntVar(&opts.MaxExt, "max-ext", opts.MaxExt, "Upper bound on one-side extension per contig.")
	flag.IntVar(&opts.InnerMargin, "inner-margin", opts.InnerMargin,
		"Distance from a contig end below which a dangling read is used directly.")
	flag.IntVar(&opts.OuterMargin, "outer-margin", opts.OuterMargin,
		"Distance from a contig end below which a dangling read is kept for realignment.")
	flag.IntVar(&opts.MinCoverage, "min-coverage", opts.MinCoverage,
		"Minimum overhang coverage for the consensus walker to continue.")
	flag.IntVar(&opts.MinContigLen, "min-contig-len", opts.MinContigLen,
		"Contigs shorter than this pass through unextended (0 disables).")
	flag.StringVar(&opts.TempDir, "tmp", opts.TempDir, "Root directory for scratch files.")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
	}
	draftPath, readsPath := flag.Arg(0), flag.Arg(1)

	mode, err := scaffold.ParseConsensusMode(*consensusName)
	if err != nil {
		log.Fatal(err)
	}
	opts.ConsensusMode = mode
	readType, err := aligners.ParseReadType(*readTypeName)
	if err != nil {
		log.Fatal(err)
	}
	aligner, err := aligners.New(*alignerName, readType, opts.Threads)
	if err != nil {
		log.Fatal(err)
	}
	if !aligners.IsAvailable(aligner.Name()) {
		log.Fatalf("aligner %q not found on PATH", aligner.Name())
	}

	s, err := scaffold.New(opts, aligner, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(context.Background(), draftPath, readsPath, *outPath); err != nil {
		log.Fatal(err)
	}
}
