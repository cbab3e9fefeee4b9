package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sciscroll/application/assembler"
	"sciscroll/domain/content"
	"sciscroll/infrastructure/config"
	"sciscroll/infrastructure/media"
	"sciscroll/infrastructure/orchestrator"
	"sciscroll/infrastructure/topicgraph"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideTopicGraph creates the static topic catalog
func ProvideTopicGraph() *topicgraph.Graph {
	return topicgraph.New()
}

// ProvideTextPools creates the mock-path paragraph pools
func ProvideTextPools() content.TextPools {
	return content.DefaultTextPools()
}

// ProvideGenericPool creates the templated pool for unknown topics
func ProvideGenericPool() content.GenericPool {
	return content.DefaultGenericPool()
}

// ProvideMediaRegistry builds the provider registry. Key-less providers
// are always registered; keyed providers only when their credentials
// are configured. The nil checks stay on the concrete types so an
// unconfigured constructor's nil does not sneak in as a non-nil
// interface.
func ProvideMediaRegistry(cfg *config.Config) *media.Registry {
	registry := media.NewRegistry()

	registry.Register(content.KindWikipediaImage, media.NewWikipediaProvider())
	registry.Register(content.KindWikimedia, media.NewWikimediaProvider())
	registry.Register(content.KindXKCD, media.NewXKCDProvider())

	if p := media.NewUnsplashProvider(cfg.UnsplashAccessKey); p != nil {
		registry.Register(content.KindUnsplash, p)
	}
	if p := media.NewRedditProvider(cfg.RedditUserAgent); p != nil {
		registry.Register(content.KindReddit, p)
	}
	if p := media.NewImgflipProvider(cfg.ImgflipUsername, cfg.ImgflipPassword); p != nil {
		registry.Register(content.KindMeme, p)
	}
	if p := media.NewTwitterProvider(cfg.TwitterBearerToken); p != nil {
		registry.Register(content.KindTweet, p)
	}

	return registry
}

// ProvidePlanner creates the orchestrator client, or nil in mock mode.
func ProvidePlanner(cfg *config.Config, logger *zap.Logger) (orchestrator.Planner, error) {
	if cfg.MockMode() {
		logger.Info("No orchestrator API key configured, running in mock mode")
		return nil, nil
	}
	return orchestrator.NewOpenAIPlanner(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
}

// ProvideAssembler creates the content assembler
func ProvideAssembler(
	graph *topicgraph.Graph,
	pools content.TextPools,
	generic content.GenericPool,
	cfg *config.Config,
	planner orchestrator.Planner,
	registry *media.Registry,
	logger *zap.Logger,
) *assembler.Assembler {
	return assembler.New(graph, pools, generic, cfg.GroupsPerResponse, planner, registry, logger)
}
