package responses

import (
	"github.com/google/uuid"

	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	FinishTime     int `json:"finish_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}
type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}
type ScheduleResponse struct {
	RunId                 uuid.UUID         `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	CompletionOrder       string            `json:"completion_order"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline"`
}
type AdviceResponse struct {
	Algorithms []string `json:"algorithms"`
	Message    string   `json:"message"`
}

func NewScheduleResponse(schedule schedulers.Schedule, analytics schedulers.Analytics) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(schedule.Processes))
	for _, p := range schedule.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.ProcessId,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			FinishTime:     p.FinishTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnAroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}
	timeline := make([]SliceResponse, 0, len(schedule.Timeline))
	for _, s := range schedule.Timeline {
		timeline = append(timeline, SliceResponse{ProcessId: s.ProcessId, Start: s.Start, End: s.End})
	}

	return ScheduleResponse{
		RunId:                 uuid.New(),
		Algorithm:             schedule.Algorithm.String(),
		TotalTime:             analytics.TotalTime,
		IdleTime:              analytics.IdleTime,
		AverageWaitingTime:    analytics.AverageWaitingTime,
		AverageResponseTime:   analytics.AverageResponseTime,
		AverageTurnAroundTime: analytics.AverageTurnAroundTime,
		CpuUtilization:        analytics.CpuUtilization,
		CpuThroughput:         analytics.CpuThroughput,
		CompletionOrder:       analytics.CompletionOrderString(),
		Details:               details,
		Timeline:              timeline,
	}
}

func NewAdviceResponse(suggestion advisor.Suggestion) AdviceResponse {
	algorithms := make([]string, 0, len(suggestion.Recommendations))
	for _, r := range suggestion.Recommendations {
		algorithms = append(algorithms, r.Algorithm.String())
	}
	return AdviceResponse{Algorithms: algorithms, Message: suggestion.Message()}
}
