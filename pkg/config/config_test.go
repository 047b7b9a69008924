package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MajorDroolz/schedsim/pkg/sim"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
processes: 8
cpu_bound: 2
seed: 3
lambda: 0.001
threshold: 3000
t_cs: 4
alpha: 0.5
t_slice: 128
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sim.Params{
		N: 8, NCPU: 2, Seed: 3, Lambda: 0.001, Threshold: 3000,
		TCS: 4, Alpha: 0.5, TSlice: 128,
	}, p)
}

func TestLoad_TimeLimit(t *testing.T) {
	path := write(t, `
processes: 1
cpu_bound: 0
seed: 32
lambda: 0.001
threshold: 3000
t_cs: 4
alpha: 0.75
t_slice: 256
time_limit: 1000000
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000000, p.TimeLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := write(t, "processes: [not an int")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_OutOfRange(t *testing.T) {
	path := write(t, `
processes: 30
cpu_bound: 2
seed: 3
lambda: 0.001
threshold: 3000
t_cs: 4
alpha: 0.5
t_slice: 128
`)
	_, err := Load(path)
	require.ErrorIs(t, err, sim.ErrBadParams)
}
