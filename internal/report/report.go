// Package report renders a finished schedule as text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/schedulers"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Write prints the per-process table followed by the batch metrics.
func Write(w io.Writer, schedule schedulers.Schedule, analytics schedulers.Analytics) {
	outputTitle(w, schedule.Algorithm.Title())

	rows := make([][]string, 0, len(schedule.Processes))
	for _, p := range schedule.Processes {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", p.ProcessId),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Finish", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", analytics.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", analytics.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", analytics.AverageResponseTime)})
	table.Render()

	writeMetrics(w, analytics)
	_, _ = fmt.Fprintln(w)
}

func writeMetrics(w io.Writer, analytics schedulers.Analytics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"CPU Utilization", fmt.Sprintf("%.2f %%", analytics.CpuUtilization)},
		{"Throughput", fmt.Sprintf("%.2f processes/unit time", analytics.CpuThroughput)},
		{"Idle Time", fmt.Sprint(analytics.IdleTime)},
		{"Completion Order", analytics.CompletionOrderString()},
	})
	table.Render()
}

// WriteComparison prints one row per algorithm for side by side comparison.
func WriteComparison(w io.Writer, results []schedulers.Schedule, analytics []schedulers.Analytics) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization", "Throughput"})
	for i, schedule := range results {
		a := analytics[i]
		table.Append([]string{
			schedule.Algorithm.Title(),
			fmt.Sprintf("%.2f", a.AverageWaitingTime),
			fmt.Sprintf("%.2f", a.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", a.AverageResponseTime),
			fmt.Sprintf("%.2f %%", a.CpuUtilization),
			fmt.Sprintf("%.2f", a.CpuThroughput),
		})
	}
	table.Render()
}
