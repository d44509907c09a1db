package resultio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasenameStripsExtension(t *testing.T) {
	b, err := Basename("/data/instances/frb30.graph")
	require.NoError(t, err)
	assert.Equal(t, "frb30", b)
}

func TestBasenameTooShort(t *testing.T) {
	_, err := Basename("a.txt")
	assert.ErrorIs(t, err, ErrBasenameTooShort)
}

func TestPathsPerAlgorithm(t *testing.T) {
	trace, sol := Paths("output", "frb30", AlgBnB, 600, 0)
	assert.Equal(t, filepath.Join("output", "frb30_BnB_600.trace"), trace)
	assert.Equal(t, filepath.Join("output", "frb30_BnB_600.sol"), sol)

	trace, sol = Paths("output", "frb30", AlgApprox, 600, 0)
	assert.Equal(t, filepath.Join("output", "frb30_Approx.trace"), trace)
	assert.Equal(t, filepath.Join("output", "frb30_Approx.sol"), sol)

	trace, sol = Paths("output", "frb30", AlgLS1, 600, 42)
	assert.Equal(t, filepath.Join("output", "frb30_LS1_600_42.trace"), trace)
	assert.Equal(t, filepath.Join("output", "frb30_LS1_600_42.sol"), sol)
}

func TestTraceWriterRecordsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.trace")

	tw, err := OpenTrace(path)
	require.NoError(t, err)
	require.NoError(t, tw.Record(0, 10))
	require.NoError(t, tw.Record(250*time.Millisecond, 7))
	require.NoError(t, tw.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.000000,10\n0.250000,7\n", string(data))
}

func TestWriteSolutionFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sol")

	require.NoError(t, WriteSolution(path, []int{0, 2, 4}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n1,3,5\n", string(data))
}
