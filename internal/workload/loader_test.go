package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
)

func TestLoad_YAML(t *testing.T) {
	request, err := Load(filepath.Join("testdata", "jobs.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, request.TimeQuantum)
	assert.Equal(t, []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 8, Priority: 4},
	}, request.Jobs)
}

func TestLoad_CSV(t *testing.T) {
	request, err := Load(filepath.Join("testdata", "jobs.csv"))
	require.NoError(t, err)

	assert.Zero(t, request.TimeQuantum)
	assert.Equal(t, []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 8, Priority: 0},
	}, request.Jobs)
}

func TestReadCSV_WithoutHeader(t *testing.T) {
	request, err := ReadCSV(strings.NewReader("4,2,1,0\n"))
	require.NoError(t, err)
	require.Len(t, request.Jobs, 1)
	assert.Equal(t, 4, request.Jobs[0].ProcessId)
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,0,x,1\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("1,0\n"))
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
