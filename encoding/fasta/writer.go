package fasta

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// lineWidth is the number of bases written per sequence line.
const lineWidth = 80

// WriteRecord writes one named sequence to w, wrapping the bases at 80
// columns.
func WriteRecord(w io.Writer, name, seq string) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, name, seq); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the sequences to w as FASTA records. names and seqs are
// parallel; entries at the same index form one record.
func Write(w io.Writer, names, seqs []string) error {
	if len(names) != len(seqs) {
		return errors.Errorf("fasta: %d names for %d sequences", len(names), len(seqs))
	}
	bw := bufio.NewWriter(w)
	for i := range names {
		if err := writeRecord(bw, names[i], seqs[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the sequences to a FASTA file at path, replacing any
// existing file.
func WriteFile(path string, names, seqs []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "fasta: create %s", path)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "fasta: close %s", path)
		}
	}()
	return Write(f, names, seqs)
}

func writeRecord(bw *bufio.Writer, name, seq string) error {
	if name == "" {
		return errors.New("fasta: empty sequence name")
	}
	if err := bw.WriteByte('>'); err != nil {
		return err
	}
	if _, err := bw.WriteString(name); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for len(seq) > lineWidth {
		if _, err := bw.WriteString(seq[:lineWidth]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[lineWidth:]
	}
	if _, err := bw.WriteString(seq); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
