package main

import (
	"github.com/hibiken/asynq"

	snapshotJob "spotify-etl/internal/domains/snapshot/job"
	"spotify-etl/internal/shared"
	"spotify-etl/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	transformSnapshot *snapshotJob.TransformHandler
	scanIntake        *snapshotJob.ScanIntakeHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		transformSnapshot: snapshotJob.NewTransformHandler(c.TransformService),
		scanIntake:        snapshotJob.NewScanIntakeHandler(c.Storage, c.Queue, c.Config.Pipeline),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeTransformSnapshot, h.transformSnapshot.ProcessTask)
	mux.HandleFunc(shared.TypeScanIntake, h.scanIntake.ProcessTask)
}
