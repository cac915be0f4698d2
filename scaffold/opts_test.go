package scaffold

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, DefaultOpts.Validate())
}

func TestValidateRejectsBadOpts(t *testing.T) {
	for _, mutate := range []func(*Opts){
		func(o *Opts) { o.MaxExt = 0 },
		func(o *Opts) { o.InnerMargin = -1 },
		func(o *Opts) { o.OuterMargin = o.InnerMargin - 1 },
		func(o *Opts) { o.MinCoverage = 0 },
		func(o *Opts) { o.LookaheadCoverageFactor = 1.5 },
		func(o *Opts) { o.Threads = 0 },
		func(o *Opts) { o.MinContigLen = -1 },
	} {
		opts := DefaultOpts
		mutate(&opts)
		err := opts.Validate()
		assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
	}
}

func TestParseConsensusMode(t *testing.T) {
	for _, name := range []string{"mv-realign", "mv-simple", "poa"} {
		mode, err := ParseConsensusMode(name)
		assert.NoError(t, err)
		expect.EQ(t, mode.String(), name)
	}
	_, err := ParseConsensusMode("majority")
	assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
}
