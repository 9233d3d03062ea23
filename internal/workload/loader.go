// Package workload reads batches of jobs from YAML or CSV files.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"cpu-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload file format")

// Load reads path, choosing the decoder from its extension.
func Load(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadYAML decodes a document shaped like the HTTP request body.
func ReadYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading workload yaml: %w", err)
	}
	var request requests.ScheduleRequests
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("parsing workload yaml: %w", err)
	}
	return &request, nil
}

// ReadCSV decodes rows of "process_id,arrival_time,burst_time[,priority]".
// A first row whose leading cell is not a number is treated as a header.
func ReadCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading workload csv: %w", err)
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && len(row) > 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
				continue
			}
		}
		job, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("workload csv line %d: %w", i+1, err)
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func parseRow(row []string) (requests.Job, error) {
	if len(row) < 3 || len(row) > 4 {
		return requests.Job{}, fmt.Errorf("expected 3 or 4 columns, got %d", len(row))
	}
	values := make([]int, 4)
	for i, cell := range row {
		v, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return requests.Job{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		values[i] = v
	}
	return requests.Job{
		ProcessId:   values[0],
		ArrivalTime: values[1],
		BurstTime:   values[2],
		Priority:    values[3],
	}, nil
}
