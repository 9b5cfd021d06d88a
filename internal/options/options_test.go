package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		NoError(func(c *testConfig) { c.value = 2 }),
		NoError(func(c *testConfig) { c.name = "second" }),
	)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.value)
	require.Equal(t, "second", cfg.name)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	cfg := &testConfig{}
	err := Apply(cfg,
		New(func(c *testConfig) error { c.value = 1; return nil }),
		New(func(*testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 3 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.value)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
