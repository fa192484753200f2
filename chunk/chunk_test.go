package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTiling asserts the planner invariants: chunks are non-empty, start at
// zero, end at len(data), touch back to back and begin right after a newline.
func checkTiling(t *testing.T, data []byte, parallelism int) {
	t.Helper()
	chunks := Plan(data, parallelism)

	require.NotEmpty(t, chunks)
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, len(data), chunks[len(chunks)-1].End)

	for i, c := range chunks {
		assert.Less(t, c.Start, c.End)
		if i > 0 {
			assert.Equal(t, chunks[i-1].End, c.Start)
			assert.Equal(t, byte('\n'), data[c.Start-1])
		}
	}
}

func TestPlanTiling(t *testing.T) {
	inputs := [][]byte{
		[]byte("a;1.0\n"),
		[]byte("a;1.0\nb;2.0\n"),
		[]byte(strings.Repeat("Ouagadougou;25.4\n", 100)),
		[]byte("x;0.0\n" + strings.Repeat("Yellowknife;-31.2\n", 37)),
	}
	for _, data := range inputs {
		for p := 1; p <= 16; p++ {
			t.Run(fmt.Sprintf("len=%d/p=%d", len(data), p), func(t *testing.T) {
				checkTiling(t, data, p)
			})
		}
	}
}

func TestPlanEmpty(t *testing.T) {
	assert.Nil(t, Plan(nil, 8))
}

func TestPlanCollapsesTinyInputs(t *testing.T) {
	data := []byte("a;1.0\nb;2.0\n")
	chunks := Plan(data, 64)
	assert.LessOrEqual(t, len(chunks), 2)
	checkTiling(t, data, 64)
}

func TestPlanNoTrailingNewline(t *testing.T) {
	checkTiling(t, []byte("a;1.0\nb;2.0"), 4)
}

func TestPlanBadParallelism(t *testing.T) {
	checkTiling(t, []byte("a;1.0\nb;2.0\n"), 0)
}
