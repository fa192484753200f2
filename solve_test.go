package onebrc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"onebrc/scan"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSolveExample(t *testing.T) {
	path := writeInput(t, "Abha;-23.0\nAbha;59.2\nAccra;-10.1\nAccra;66.4\n")

	out, err := New(WithWorkers(2)).Solve(path)
	require.NoError(t, err)
	assert.Equal(t, "{Abha=-23.0/18.1/59.2, Accra=-10.1/28.2/66.4}\n", out)
}

func TestSolveEmptyFile(t *testing.T) {
	path := writeInput(t, "")

	out, err := New().Solve(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestSolveNoTrailingNewline(t *testing.T) {
	path := writeInput(t, "Abha;1.0\nAccra;2.0")

	out, err := New(WithWorkers(4)).Solve(path)
	require.NoError(t, err)
	assert.Equal(t, "{Abha=1.0/1.0/1.0, Accra=2.0/2.0/2.0}\n", out)
}

func TestSolveMissingFile(t *testing.T) {
	_, err := New().Solve(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSolveMalformedFailsWithoutOutput(t *testing.T) {
	path := writeInput(t, "Abha;-23.0\nAbha;oops\nAccra;1.0\n")

	out, err := New(WithWorkers(2)).Solve(path)
	assert.Empty(t, out)

	var perr *scan.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "oops", strings.SplitN(perr.Line, ";", 2)[1])
}

func formatTenths(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

func TestSolveDeterministicAcrossWorkers(t *testing.T) {
	stations := []string{
		"Tamale", "Bergen", "Lodwar", "Whitehorse",
		"Ouarzazate", "Abéché", "Abha", "Accra",
	}

	r := rand.New(rand.NewSource(1))
	var sb strings.Builder
	for i := 0; i < 20_000; i++ {
		name := stations[r.Intn(len(stations))]
		tenths := r.Intn(1999) - 999
		fmt.Fprintf(&sb, "%s;%s\n", name, formatTenths(tenths))
	}
	path := writeInput(t, sb.String())

	base, err := New(WithWorkers(1)).Solve(path)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 32} {
		out, err := New(WithWorkers(workers)).Solve(path)
		require.NoError(t, err)
		assert.Equal(t, base, out, "workers=%d", workers)
	}
}
