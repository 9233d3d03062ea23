package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	ByName(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Advise(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

// ByName routes /schedule/:algorithm using the external algorithm label.
func (s *SchedulerHandlerImpl) ByName(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.schedule(ctx, algorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx, err)
	}
	all := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		response, err := s.run(algorithm, request)
		if err != nil {
			return writeError(ctx, err)
		}
		all = append(all, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Advise(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx, err)
	}
	return ctx.JSON(responses.NewAdviceResponse(advisor.Suggest(request.Workloads())))
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	list := make([]fiber.Map, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		list = append(list, fiber.Map{"name": algorithm.String(), "title": algorithm.Title()})
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx, err)
	}
	response, err := s.run(algorithm, request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(algorithm schedulers.Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	opts := schedulers.Options{
		TimeQuantum:       s.config.RoundRobinTimeQuantum,
		LevelsTimeQuantum: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if request.TimeQuantum != 0 {
		opts.TimeQuantum = request.TimeQuantum
	}
	if algorithm == schedulers.RoundRobin {
		log.Println("running", algorithm, "algorithm with timeQuantum =", opts.TimeQuantum, "jobs =", len(request.Jobs))
	} else {
		log.Println("running", algorithm, "algorithm, jobs =", len(request.Jobs))
	}

	schedule, err := schedulers.Run(algorithm, request.Workloads(), opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	analytics, err := schedulers.GenerateAnalytics(schedule.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return responses.NewScheduleResponse(schedule, analytics), nil
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	return request, nil
}

func invalidFormat(ctx *fiber.Ctx, err error) error {
	log.Println("invalid request body:", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "can not proccess request"
	switch {
	case errors.Is(err, core.ErrMalformedWorkload),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, schedulers.ErrMetricsUndefined):
		status = fiber.StatusUnprocessableEntity
		message = err.Error()
	default:
		log.Println("scheduling failed:", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": message})
}
