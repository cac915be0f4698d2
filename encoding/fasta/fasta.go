// Package fasta reads and writes FASTA-formatted sequence data. FASTA
// files consist of named sequences whose bases may be interrupted by
// newlines:
//
// >contig7
// ACGTAC
// GAGGAC
// GCG
// >contig8
// ACGT
//
// Sequence names are the stretch of characters excluding spaces
// immediately after '>'; any text after a space is ignored.
package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const scanBufferSize = 64 * 1024 * 1024

// Fasta is a set of named sequences held in memory.
type Fasta struct {
	seqs     map[string]string
	seqNames []string
}

// Read parses all FASTA data from r.
func Read(r io.Reader) (*Fasta, error) {
	f := &Fasta{seqs: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, scanBufferSize)
	var (
		name string
		seq  strings.Builder
	)
	flush := func() error {
		if seq.Len() == 0 && name == "" {
			return nil
		}
		if name == "" {
			return errors.New("malformed FASTA data: sequence before first header")
		}
		if _, ok := f.seqs[name]; ok {
			return errors.Errorf("malformed FASTA data: duplicate sequence %s", name)
		}
		f.seqs[name] = seq.String()
		f.seqNames = append(f.seqNames, name)
		seq.Reset()
		return nil
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.SplitN(line[1:], " ", 2)[0]
			if name == "" {
				return nil, errors.New("malformed FASTA data: empty sequence name")
			}
		} else {
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) (*Fasta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fasta: open %s", path)
	}
	defer f.Close() // nolint: errcheck
	return Read(f)
}

// Get returns the sequence stored under name.
func (f *Fasta) Get(name string) (string, error) {
	s, ok := f.seqs[name]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", name)
	}
	return s, nil
}

// Len returns the length of the sequence stored under name.
func (f *Fasta) Len(name string) (int, error) {
	s, ok := f.seqs[name]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", name)
	}
	return len(s), nil
}

// SeqNames returns the sequence names in order of appearance.
func (f *Fasta) SeqNames() []string {
	return f.seqNames
}
