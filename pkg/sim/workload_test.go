package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SingleIOBound(t *testing.T) {
	p := Params{N: 1, NCPU: 0, Seed: 32, Lambda: 0.001, Threshold: 3000, TCS: 4, Alpha: 0.75, TSlice: 256}
	procs := Generate(p)
	require.Len(t, procs, 1)

	a := procs[0]
	require.Equal(t, "A", a.Name)
	require.Equal(t, IOBound, a.Bound)
	require.Equal(t, 1214, a.Arrival)
	require.Len(t, a.Bursts, 47)

	want := []Burst{
		{CPU: 266, IO: 16140},
		{CPU: 362, IO: 6080},
		{CPU: 1339, IO: 790},
		{CPU: 474, IO: 8890},
		{CPU: 964, IO: 6290},
		{CPU: 14, IO: 15890},
	}
	require.Equal(t, want, a.Bursts[:len(want)])

	last := a.Bursts[len(a.Bursts)-1]
	assert.False(t, last.HasIO(), "final burst has no I/O")
	assert.Positive(t, last.CPU)
}

func TestGenerate_MixedBounds(t *testing.T) {
	p := Params{N: 2, NCPU: 1, Seed: 1, Lambda: 0.01, Threshold: 1000, TCS: 2, Alpha: 0.5, TSlice: 4}
	procs := Generate(p)
	require.Len(t, procs, 2)

	a, b := procs[0], procs[1]

	require.Equal(t, "A", a.Name)
	require.Equal(t, IOBound, a.Bound)
	require.Equal(t, 317, a.Arrival)
	require.Len(t, a.Bursts, 30)
	require.Equal(t, []Burst{
		{CPU: 19, IO: 1100},
		{CPU: 58, IO: 6340},
		{CPU: 168, IO: 10},
		{CPU: 29, IO: 1010},
		{CPU: 105, IO: 560},
		{CPU: 203, IO: 2750},
	}, a.Bursts[:6])

	require.Equal(t, "B", b.Name)
	require.Equal(t, CPUBound, b.Bound)
	require.Equal(t, 43, b.Arrival)
	require.Len(t, b.Bursts, 37)
	// CPU-bound: cpu multiplied by 4, io divided by 8
	require.Equal(t, []Burst{
		{CPU: 272, IO: 200},
		{CPU: 972, IO: 158},
		{CPU: 144, IO: 35},
		{CPU: 160, IO: 62},
		{CPU: 392, IO: 83},
		{CPU: 240, IO: 52},
	}, b.Bursts[:6])
}

func TestGenerate_Deterministic(t *testing.T) {
	p := Params{N: 8, NCPU: 2, Seed: 3, Lambda: 0.001, Threshold: 3000, TCS: 4, Alpha: 0.5, TSlice: 128}
	first := Generate(p)
	second := Generate(p)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Arrival, second[i].Arrival)
		assert.Equal(t, first[i].Bound, second[i].Bound)
		assert.Equal(t, first[i].Bursts, second[i].Bursts)
	}
}

func TestGenerate_Classification(t *testing.T) {
	p := Params{N: 8, NCPU: 2, Seed: 3, Lambda: 0.001, Threshold: 3000, TCS: 4, Alpha: 0.5, TSlice: 128}
	procs := Generate(p)
	require.Len(t, procs, 8)
	for i, pr := range procs {
		want := IOBound
		if i >= p.NIO() {
			want = CPUBound
		}
		assert.Equalf(t, want, pr.Bound, "process %s", pr.Name)
		assert.NotEmpty(t, pr.Bursts)
		assert.False(t, pr.Bursts[len(pr.Bursts)-1].HasIO())
		for _, b := range pr.Bursts[:len(pr.Bursts)-1] {
			assert.True(t, b.HasIO())
		}
	}
}

func TestBanner(t *testing.T) {
	p := Params{N: 2, NCPU: 1, Seed: 1, Lambda: 0.01, Threshold: 1000, TCS: 2, Alpha: 0.5, TSlice: 4}
	got := Banner(p, Generate(p))

	require.True(t, strings.HasPrefix(got,
		"<<< PROJECT PART I -- process set (n=2) with 1 CPU-bound process >>>\n"))
	assert.Contains(t, got, "I/O-bound process A: arrival time 317ms; 30 CPU bursts:\n")
	assert.Contains(t, got, "CPU-bound process B: arrival time 43ms; 37 CPU bursts:\n")
	assert.Contains(t, got, "--> CPU burst 19ms --> I/O burst 1100ms\n")
	assert.True(t, strings.HasSuffix(got,
		"<<< PROJECT PART II -- t_cs=2ms; alpha=0.5; t_slice=4ms >>>\n"))
}

func TestBanner_Plurals(t *testing.T) {
	p := Params{N: 2, NCPU: 2, Seed: 1, Lambda: 0.01, Threshold: 1000, TCS: 2, Alpha: 0.5, TSlice: 4}
	got := Banner(p, Generate(p))
	assert.Contains(t, got, "with 2 CPU-bound processes >>>")
}
