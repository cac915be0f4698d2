package scaffold

import (
	"io"
	"os"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// ReadSAM loads all alignment records from a SAM file produced by an
// aligner backend.
func ReadSAM(path string) ([]*sam.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "open %s: %v", path, err)
	}
	defer f.Close() // nolint: errcheck
	r, err := sam.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "read %s: %v", path, err)
	}
	var records []*sam.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrIO, "read %s: %v", path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
