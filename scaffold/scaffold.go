package scaffold

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"

	"github.com/mculinovic/ONTscaffolder/encoding/fasta"
)

// Scaffolder extends the ends of every contig in a draft assembly using
// long reads. Contigs are processed independently on a worker pool; each
// worker owns a private scratch directory so the per-contig temp
// FASTA/SAM files and aligner index artifacts never collide.
type Scaffolder struct {
	opts    Opts
	aligner Aligner
	// consensus is the POA kernel, required only for ConsensusMode POA.
	consensus Consensus
}

// New validates opts and returns a Scaffolder. consensus may be nil
// unless opts selects the POA mode.
func New(opts Opts, aligner Aligner, consensus Consensus) (*Scaffolder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if aligner == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "no aligner configured")
	}
	if opts.ConsensusMode == POA && consensus == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "consensus mode poa requires a consensus kernel")
	}
	return &Scaffolder{opts: opts, aligner: aligner, consensus: consensus}, nil
}

// Run extends the draft assembly at draftPath using the long reads at
// readsPath and writes the extended assembly to outPath. Contig order in
// the output matches the input. Per-contig failures are contained: the
// contig keeps its best extension so far and the pipeline continues.
func (s *Scaffolder) Run(ctx context.Context, draftPath, readsPath, outPath string) error {
	contigs, err := loadAssembly(draftPath)
	if err != nil {
		return err
	}
	table, err := loadReads(readsPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d contigs, %d reads", len(contigs), table.Len())

	tempRoot, err := ioutil.TempDir(s.opts.TempDir, "scaffolder")
	if err != nil {
		return errors.Wrapf(ErrIO, "create temp dir: %v", err)
	}
	defer os.RemoveAll(tempRoot) // nolint: errcheck

	byContig, err := s.alignDraft(ctx, tempRoot, contigs, draftPath, readsPath)
	if err != nil {
		return err
	}

	parallelism := s.opts.Threads
	if parallelism > len(contigs) && len(contigs) > 0 {
		parallelism = len(contigs)
	}
	err = traverse.Each(parallelism, func(jobIdx int) error {
		workDir := filepath.Join(tempRoot, fmt.Sprintf("worker%d", jobIdx))
		if err := os.MkdirAll(workDir, 0700); err != nil {
			return errors.Wrapf(ErrIO, "create %s: %v", workDir, err)
		}
		startIdx := (jobIdx * len(contigs)) / parallelism
		endIdx := ((jobIdx + 1) * len(contigs)) / parallelism
		for _, contig := range contigs[startIdx:endIdx] {
			s.extendOne(ctx, contig, byContig[contig.Name], table, workDir)
		}
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, len(contigs))
	seqs := make([]string, len(contigs))
	for i, c := range contigs {
		names[i] = c.Name
		seqs[i] = c.Seq
	}
	if err := fasta.WriteFile(outPath, names, seqs); err != nil {
		return err
	}
	log.Printf("wrote %d contigs to %s", len(contigs), outPath)
	return nil
}

// extendOne extends a single contig, containing any failure to it.
func (s *Scaffolder) extendOne(ctx context.Context, contig *Contig, records []*sam.Record, table *ReadTable, workDir string) {
	if s.opts.MinContigLen > 0 && len(contig.Seq) < s.opts.MinContigLen {
		log.Printf("%s: length %d below minimum %d, skipping", contig.Name, len(contig.Seq), s.opts.MinContigLen)
		return
	}
	var err error
	if s.opts.ConsensusMode == POA {
		left, right := FindPossibleExtensions(records, table, len(contig.Seq), s.opts)
		err = ExtendContigPOA(contig, left, right, s.consensus, s.opts)
	} else {
		err = ExtendContig(ctx, contig, records, table, s.aligner, workDir, s.opts)
	}
	if err != nil {
		log.Error.Printf("%s: extension stopped early: %v", contig.Name, err)
	}
	log.Printf("%s: extended %d bases left, %d bases right", contig.Name, contig.LeftExt, contig.RightExt)
}

// alignDraft runs the initial whole-draft alignment and clusters the
// resulting records by contig name. Unmapped records are discarded here;
// supplementary alignments are kept so clipped read tails near contig
// ends are visible to the extractor.
func (s *Scaffolder) alignDraft(ctx context.Context, tempRoot string, contigs []*Contig, draftPath, readsPath string) (map[string][]*sam.Record, error) {
	refFile := filepath.Join(tempRoot, "reference.fasta")
	names := make([]string, len(contigs))
	seqs := make([]string, len(contigs))
	for i, c := range contigs {
		names[i] = c.Name
		seqs[i] = c.Seq
	}
	if err := fasta.WriteFile(refFile, names, seqs); err != nil {
		return nil, err
	}

	samFile := filepath.Join(tempRoot, "aln.sam")
	if err := s.aligner.Index(ctx, refFile); err != nil {
		return nil, err
	}
	if err := s.aligner.Align(ctx, refFile, readsPath, samFile, false); err != nil {
		return nil, err
	}
	records, err := ReadSAM(samFile)
	if err != nil {
		return nil, err
	}

	byContig := make(map[string][]*sam.Record)
	for _, rec := range records {
		if rec.Flags&sam.Unmapped != 0 || rec.Ref == nil {
			continue
		}
		byContig[rec.Ref.Name()] = append(byContig[rec.Ref.Name()], rec)
	}
	return byContig, nil
}

func loadAssembly(path string) ([]*Contig, error) {
	fa, err := fasta.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "load assembly: %v", err)
	}
	var contigs []*Contig
	for _, name := range fa.SeqNames() {
		seq, _ := fa.Get(name)
		contigs = append(contigs, &Contig{Name: name, Seq: seq})
	}
	return contigs, nil
}

func loadReads(path string) (*ReadTable, error) {
	fa, err := fasta.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "load reads: %v", err)
	}
	table := NewReadTable()
	for _, name := range fa.SeqNames() {
		seq, _ := fa.Get(name)
		table.Add(name, seq)
	}
	return table, nil
}
