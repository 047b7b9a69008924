package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTau(t *testing.T) {
	cases := []struct {
		name  string
		alpha float32
		burst int
		old   int
		want  int
	}{
		{"half and half", 0.5, 80, 100, 90},
		{"alpha 0.75", 0.75, 200, 100, 175},
		{"scenario two first burst", 0.5, 272, 100, 186},
		{"alpha 1 tracks the burst", 1, 123, 999, 123},
		{"alpha 0 keeps the estimate", 0, 123, 999, 999},
		{"fractional products ceil up", 0.5, 3, 4, 4}, // 1.5 + 2.0
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextTau(tc.alpha, tc.burst, tc.old))
		})
	}
}

func TestReadyQueue_OrderAndRemoval(t *testing.T) {
	a := &Process{Name: "A"}
	b := &Process{Name: "B"}
	c := &Process{Name: "C"}

	var q ready
	q.push(300, c)
	q.push(100, b)
	q.push(100, a)
	q.sort()

	// equal keys break on name
	assert.Equal(t, []string{"A", "B", "C"}, q.names())
	assert.Same(t, a, q.head())

	q.remove(a)
	assert.Equal(t, []string{"B", "C"}, q.names())

	q.remove(c)
	q.remove(c)
	assert.Equal(t, []string{"B"}, q.names())

	q.remove(b)
	assert.Nil(t, q.head())
	assert.Empty(t, q.names())
}
