package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readConfig struct {
	skip      uint64
	overflows uint64
	calls     []string
}

func withSkip(n uint64) Option[*readConfig] {
	return NoError(func(c *readConfig) {
		c.skip = n
		c.calls = append(c.calls, "skip")
	})
}

func withOverflows(n uint64) Option[*readConfig] {
	return New(func(c *readConfig) error {
		if n > 1<<20 {
			return errors.New("too many overflows")
		}
		c.overflows = n
		c.calls = append(c.calls, "overflows")

		return nil
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &readConfig{}

	err := Apply(cfg, withSkip(3), withOverflows(2), withSkip(5))
	require.NoError(t, err)
	require.Equal(t, uint64(5), cfg.skip)
	require.Equal(t, uint64(2), cfg.overflows)
	require.Equal(t, []string{"skip", "overflows", "skip"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &readConfig{}

	err := Apply(cfg, withSkip(1), withOverflows(1<<30), withSkip(9))
	require.EqualError(t, err, "too many overflows")
	require.Equal(t, uint64(1), cfg.skip)
	require.Equal(t, []string{"skip"}, cfg.calls)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &readConfig{skip: 7}

	require.NoError(t, Apply(cfg))
	require.Equal(t, uint64(7), cfg.skip)
}
