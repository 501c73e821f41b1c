package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeCoversExactlyOnce(t *testing.T) {
	for _, p := range []int{1, 2, 3, 4, 7, 8, 16, 33} {
		for _, n := range []int{0, 1, 2, 15, 16, 17, 256, 1000} {
			owner := make([]int, n)
			for i := range owner {
				owner[i] = -1
			}
			prevEnd := 0
			for id := 0; id < p; id++ {
				start, end := Range(id, p, n)
				require.LessOrEqual(t, start, end, "p=%d n=%d id=%d", p, n, id)
				assert.Equal(t, prevEnd, start, "ranges must be contiguous (p=%d n=%d id=%d)", p, n, id)
				for i := start; i < end; i++ {
					require.Equal(t, -1, owner[i], "index %d owned twice (p=%d n=%d)", i, p, n)
					owner[i] = id
				}
				prevEnd = end
			}
			assert.Equal(t, n, prevEnd, "union must end at n (p=%d)", p)
			for i, o := range owner {
				assert.NotEqual(t, -1, o, "index %d unowned (p=%d n=%d)", i, p, n)
			}
		}
	}
}

func TestRangeFormula(t *testing.T) {
	tests := []struct {
		id, p, n   int
		start, end int
	}{
		{0, 1, 16, 0, 16},
		{0, 3, 16, 0, 5},
		{1, 3, 16, 5, 10},
		{2, 3, 16, 10, 16},
		{5, 8, 3, 1, 2},
		{7, 16, 16, 7, 8},
	}
	for _, tt := range tests {
		start, end := Range(tt.id, tt.p, tt.n)
		assert.Equal(t, tt.start, start, "start of %+v", tt)
		assert.Equal(t, tt.end, end, "end of %+v", tt)
	}
}
