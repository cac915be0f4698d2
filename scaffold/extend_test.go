package scaffold

import (
	"context"
	"io/ioutil"
	"strconv"
	"strings"
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAligner stands in for the external mapper. Align writes samBody to
// the requested SAM path.
type fakeAligner struct {
	indexCalls int
	alignCalls int
	samBody    string
	indexErr   error
}

func (f *fakeAligner) Name() string { return "fake" }

func (f *fakeAligner) Index(ctx context.Context, referenceFile string) error {
	f.indexCalls++
	return f.indexErr
}

func (f *fakeAligner) Align(ctx context.Context, referenceFile, readsFile, samFile string, onlyPrimary bool) error {
	f.alignCalls++
	return ioutil.WriteFile(samFile, []byte(f.samBody), 0600)
}

const contigSeq = "GGGGGGGGGG"

// liveRecords returns n reads whose clips dangle 3 bp past both contig
// ends, plus a table registering them.
func liveRecords(n int) ([]*sam.Record, *ReadTable) {
	table := NewReadTable()
	var records []*sam.Record
	for i := 0; i < n; i++ {
		name := "r" + strconv.Itoa(i)
		seq := "TTT" + contigSeq + "AAA"
		records = append(records, alnRecord(name, 0, seq,
			sam.NewCigarOp(sam.CigarSoftClipped, 3),
			sam.NewCigarOp(sam.CigarMatch, 10),
			sam.NewCigarOp(sam.CigarSoftClipped, 3)))
		table.Add(name, seq)
	}
	return records, table
}

func TestExtendTerminatesWithoutAligner(t *testing.T) {
	// No overhang drops out of consensus, so the refinement loop stops
	// after the first pass without touching the aligner.
	records, table := liveRecords(6)
	contig := &Contig{Name: "ctg", Seq: contigSeq}
	aligner := &fakeAligner{}

	err := ExtendContig(context.Background(), contig, records, table, aligner, t.TempDir(), DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, aligner.indexCalls, 0)
	expect.EQ(t, aligner.alignCalls, 0)

	// Identical overhangs of length 3 walk two bases per side.
	expect.EQ(t, contig.LeftExt, 2)
	expect.EQ(t, contig.RightExt, 2)
	expect.EQ(t, contig.Seq, "TT"+contigSeq+"AA")
	expect.EQ(t, len(contig.Seq), len(contigSeq)+contig.LeftExt+contig.RightExt)
}

func TestExtendRealignsDropouts(t *testing.T) {
	// One read lands in the outer margin band: it is carried as a dropped
	// placeholder and handed to the aligner after the first pass.
	records, table := liveRecords(6)
	badSeq := strings.Repeat("T", 12) + "GGGG"
	records = append(records, alnRecord("r-bad", 6, badSeq,
		sam.NewCigarOp(sam.CigarSoftClipped, 12),
		sam.NewCigarOp(sam.CigarMatch, 4)))
	table.Add("r-bad", badSeq)

	// The realignment maps nothing: the read stays unusable.
	aligner := &fakeAligner{samBody: "@HD\tVN:1.6\n" +
		"@SQ\tSN:ctg\tLN:14\n" +
		"r-bad\t4\t*\t0\t0\t*\t*\t0\t0\t*\t*\n"}
	contig := &Contig{Name: "ctg", Seq: contigSeq}

	err := ExtendContig(context.Background(), contig, records, table, aligner, t.TempDir(), DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, aligner.indexCalls, 1)
	expect.EQ(t, aligner.alignCalls, 1)
	expect.EQ(t, contig.Seq, "TT"+contigSeq+"AA")
	expect.EQ(t, len(contig.Seq), len(contigSeq)+contig.LeftExt+contig.RightExt)
}

func TestExtendContainsAlignerFailure(t *testing.T) {
	// A failing aligner ends the refinement loop, but the extension from
	// the completed pass is already applied.
	records, table := liveRecords(6)
	badSeq := strings.Repeat("T", 12) + "GGGG"
	records = append(records, alnRecord("r-bad", 6, badSeq,
		sam.NewCigarOp(sam.CigarSoftClipped, 12),
		sam.NewCigarOp(sam.CigarMatch, 4)))
	table.Add("r-bad", badSeq)

	aligner := &fakeAligner{indexErr: errors.Wrap(ErrExternalTool, "bwa: exit status 1")}
	contig := &Contig{Name: "ctg", Seq: contigSeq}

	err := ExtendContig(context.Background(), contig, records, table, aligner, t.TempDir(), DefaultOpts)
	assert.Equal(t, ErrExternalTool, errors.Cause(err))
	expect.EQ(t, contig.Seq, "TT"+contigSeq+"AA")
}

func TestExtendEmptyRecords(t *testing.T) {
	contig := &Contig{Name: "ctg", Seq: contigSeq}
	err := ExtendContig(context.Background(), contig, nil, NewReadTable(), &fakeAligner{}, t.TempDir(), DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, contig.Seq, contigSeq)
	expect.EQ(t, contig.LeftExt, 0)
	expect.EQ(t, contig.RightExt, 0)
}

// fakeConsensus returns a fixed string regardless of input.
type fakeConsensus struct{ result string }

func (f *fakeConsensus) Consensus(seqs []string) (string, error) { return f.result, nil }

func TestExtendContigPOA(t *testing.T) {
	records, table := liveRecords(6)
	left, right := FindPossibleExtensions(records, table, len(contigSeq), DefaultOpts)
	contig := &Contig{Name: "ctg", Seq: contigSeq}

	err := ExtendContigPOA(contig, left, right, &fakeConsensus{result: "TTT"}, DefaultOpts)
	require.NoError(t, err)
	// The left consensus is computed in walker orientation and reversed
	// before prepending.
	expect.EQ(t, contig.Seq, "TTT"+contigSeq+"TTT")
	expect.EQ(t, contig.LeftExt, 3)
	expect.EQ(t, contig.RightExt, 3)
}
