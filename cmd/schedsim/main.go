package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

var errMissingFile = errors.New("missing -file")

type options struct {
	file       string
	algorithm  string
	quantum    int
	configPath string
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "workload file (.yaml, .yml or .csv)")
	flag.StringVar(&opts.algorithm, "algorithm", "all", "fcfs, sjf, priority, rr, mlfq or all")
	flag.IntVar(&opts.quantum, "quantum", 0, "round robin time quantum (overrides the file and config)")
	flag.StringVar(&opts.configPath, "config", "", "config file (defaults to ./config.yaml when present)")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalln(err)
	}
}

// run loads the batch and writes one report per selected algorithm to w.
// The round robin quantum is taken from -quantum, then the file, then config.
func run(w io.Writer, opts options) error {
	if opts.file == "" {
		return errMissingFile
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	request, err := workload.Load(opts.file)
	if err != nil {
		return err
	}

	algorithms := schedulers.Algorithms()
	if opts.algorithm != "all" {
		algorithm, err := schedulers.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{algorithm}
	}

	runOpts := schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if request.TimeQuantum != 0 {
		runOpts.TimeQuantum = request.TimeQuantum
	}
	if opts.quantum != 0 {
		runOpts.TimeQuantum = opts.quantum
	}

	workloads := request.Workloads()
	_, _ = fmt.Fprintln(w, advisor.Suggest(workloads).Message())

	results := make([]schedulers.Schedule, 0, len(algorithms))
	analytics := make([]schedulers.Analytics, 0, len(algorithms))
	for _, algorithm := range algorithms {
		schedule, err := schedulers.Run(algorithm, workloads, runOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", algorithm, err)
		}
		a, err := schedulers.GenerateAnalytics(schedule.Processes)
		if err != nil {
			return fmt.Errorf("%s: %w", algorithm, err)
		}
		report.Write(w, schedule, a)
		results = append(results, schedule)
		analytics = append(analytics, a)
	}
	if len(results) > 1 {
		report.WriteComparison(w, results, analytics)
	}
	return nil
}
