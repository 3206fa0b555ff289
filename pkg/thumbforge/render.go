package thumbforge

import (
	"context"

	"github.com/user/thumbforge/pkg/adapters/ggrenderer"
	"github.com/user/thumbforge/pkg/adapters/gofontsource"
	"github.com/user/thumbforge/pkg/adapters/httpfetcher"
	"github.com/user/thumbforge/pkg/adapters/logger"
	"github.com/user/thumbforge/pkg/adapters/nullsink"
	"github.com/user/thumbforge/pkg/adapters/osfilesystem"
	"github.com/user/thumbforge/pkg/adapters/psdwriter"
	"github.com/user/thumbforge/pkg/adapters/svgrasterizer"
	"github.com/user/thumbforge/pkg/orchestrator"
	"github.com/user/thumbforge/pkg/ports"
	"github.com/user/thumbforge/pkg/stages/background"
	"github.com/user/thumbforge/pkg/stages/compose"
	"github.com/user/thumbforge/pkg/stages/encode"
	"github.com/user/thumbforge/pkg/stages/icons"
	"github.com/user/thumbforge/pkg/stages/textblock"
)

// Request describes a single thumbnail render.
type Request struct {
	Title          string
	BackgroundPath string
	IconQueries    []string
	OutputPath     string

	// LayeredOutputPath is optional; when set, a layered PSD document is
	// written alongside the raster output.
	LayeredOutputPath string

	// Logger is optional; when nil, log output is suppressed.
	Logger ports.Logger
}

// Render generates a thumbnail with default configuration.
func Render(ctx context.Context, req Request) (orchestrator.RunResult, error) {
	return RenderWithConfig(ctx, req, NewConfigBuilder().Build())
}

// RenderWithConfig generates a thumbnail with the given configuration,
// wiring the default adapters. For custom adapters use the orchestrator
// package directly.
func RenderWithConfig(ctx context.Context, req Request, cfg Config) (orchestrator.RunResult, error) {
	log := req.Logger
	if log == nil {
		log = logger.NewNoop()
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	fonts := gofontsource.New()
	sink := nullsink.New()

	orch := orchestrator.New(
		background.NewStage(renderer, sink, log),
		textblock.NewStage(fonts, renderer, sink, log),
		icons.NewStage(httpfetcher.New(), svgrasterizer.New(), renderer, fonts, sink, log),
		compose.NewStage(renderer, sink, log),
		encode.NewStage(renderer, log),
		psdwriter.New(),
		fs,
		sink,
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig(
		req.Title,
		req.BackgroundPath,
		req.IconQueries,
		EnsureExtension(req.OutputPath, "png"),
	)
	if req.LayeredOutputPath != "" {
		orchConfig.LayeredOutputPath = EnsureExtension(req.LayeredOutputPath, "psd")
	}

	return orch.Run(ctx, orchConfig)
}
