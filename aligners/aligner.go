// Package aligners wraps the external long-read mappers the scaffolder
// can drive. Each backend shells out to an installed binary with an
// explicit argument vector (no shell interpolation), captures stderr, and
// maps a nonzero exit to scaffold.ErrExternalTool.
package aligners

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/mculinovic/ONTscaffolder/scaffold"
)

// ReadType distinguishes the sequencing technology of the input reads.
// Backends translate it into their technology presets.
type ReadType int

const (
	// PacBio reads.
	PacBio ReadType = iota
	// ONT (Oxford Nanopore) reads.
	ONT
)

// ParseReadType converts a command-line technology name to a ReadType.
func ParseReadType(s string) (ReadType, error) {
	switch s {
	case "pacbio":
		return PacBio, nil
	case "ont":
		return ONT, nil
	}
	return 0, errors.Wrapf(scaffold.ErrInvalidConfig, "unknown read type %q", s)
}

func (t ReadType) String() string {
	if t == ONT {
		return "ont"
	}
	return "pacbio"
}

// New returns the aligner backend registered under name, one of "bwa" or
// "graphmap".
func New(name string, readType ReadType, threads int) (scaffold.Aligner, error) {
	switch name {
	case "bwa":
		return &bwa{readType: readType, threads: threads}, nil
	case "graphmap":
		return &graphmap{readType: readType, threads: threads}, nil
	}
	return nil, errors.Wrapf(scaffold.ErrInvalidConfig, "unknown aligner %q", name)
}

// IsAvailable reports whether binary can be found through PATH.
func IsAvailable(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// run executes argv[0] with the remaining arguments. When stdout is
// non-nil the command's standard output is written to it.
func run(ctx context.Context, stdout *os.File, argv ...string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if stdout != nil {
		cmd.Stdout = stdout
	}
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(scaffold.ErrExternalTool, "%s: %v: %s", argv[0], err, stderr.String())
	}
	return nil
}

// runToFile executes argv with standard output redirected to path.
func runToFile(ctx context.Context, path string, argv ...string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(scaffold.ErrIO, "create %s: %v", path, err)
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = errors.Wrapf(scaffold.ErrIO, "close %s: %v", path, e)
		}
	}()
	return run(ctx, out, argv...)
}
