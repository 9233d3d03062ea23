package main

import (
	"fmt"
	"log"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	app := api.NewApp(cfg)

	log.Printf("scheduler api listening on :%d (rr quantum=%d, mlfq quantums=%v)",
		cfg.Port, cfg.RoundRobinTimeQuantum, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
