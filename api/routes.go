package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
)

// NewApp builds the fiber application with every route registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	SetupRoutes(app, NewSchedulerHandlerImpl(cfg), NewRateLimiter(cfg.RateLimit))
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler, limiter *RateLimiter) {
	api := app.Group("/api", limiter.Middleware())

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/schedule/:algorithm", handler.ByName)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/advise", handler.Advise)
	}
}
