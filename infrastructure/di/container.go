package di

import (
	"go.uber.org/zap"

	"sciscroll/application/assembler"
	"sciscroll/infrastructure/config"
	"sciscroll/infrastructure/media"
	"sciscroll/infrastructure/orchestrator"
	"sciscroll/infrastructure/topicgraph"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Graph     *topicgraph.Graph
	Providers *media.Registry
	Planner   orchestrator.Planner
	Assembler *assembler.Assembler
}
