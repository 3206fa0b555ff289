// Package main provides the CLI entry point for thumbforge.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/thumbforge/pkg/adapters/filesink"
	"github.com/user/thumbforge/pkg/adapters/ggrenderer"
	"github.com/user/thumbforge/pkg/adapters/gofontsource"
	"github.com/user/thumbforge/pkg/adapters/httpfetcher"
	"github.com/user/thumbforge/pkg/adapters/logger"
	"github.com/user/thumbforge/pkg/adapters/nullsink"
	"github.com/user/thumbforge/pkg/adapters/osfilesystem"
	"github.com/user/thumbforge/pkg/adapters/psdwriter"
	"github.com/user/thumbforge/pkg/adapters/svgrasterizer"
	"github.com/user/thumbforge/pkg/config"
	"github.com/user/thumbforge/pkg/orchestrator"
	"github.com/user/thumbforge/pkg/ports"
	"github.com/user/thumbforge/pkg/stages/background"
	"github.com/user/thumbforge/pkg/stages/compose"
	"github.com/user/thumbforge/pkg/stages/encode"
	"github.com/user/thumbforge/pkg/stages/icons"
	"github.com/user/thumbforge/pkg/stages/textblock"
	"github.com/user/thumbforge/pkg/summarizer"
	"github.com/user/thumbforge/pkg/thumbforge"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "thumbforge",
		Usage:   l10n.T("Compose titled thumbnails with technology icons"),
		Version: version,
		Commands: []*cli.Command{
			renderCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: l10n.T("Render a thumbnail from a background, title and icon queries"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Usage:    l10n.T("Title text (use \\n for manual line breaks)"),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "background",
				Aliases:  []string{"b"},
				Usage:    l10n.T("Background image path"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "icons",
				Aliases: []string{"i"},
				Usage:   l10n.T("Comma-separated icon queries (e.g. python,react,docker)"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "thumbnail",
				Usage:   l10n.T("Output file path (extension added when missing)"),
			},
			&cli.StringFlag{
				Name:  "layered",
				Usage: l10n.T("Also write a layered PSD document to this path"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:  "size",
				Value: "fullhd",
				Usage: l10n.T("Canvas size preset (fullhd, hd)"),
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: l10n.T("Canvas width (overrides preset)"),
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: l10n.T("Canvas height (overrides preset)"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("Output render summary to file (Markdown format)"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Enable debug output"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Value: "./debug",
				Usage: l10n.T("Directory for debug output"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runRender,
	}
}

func runRender(c *cli.Context) error {
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	orchConfig, err := buildOrchestratorConfig(c)
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	fetcher := httpfetcher.New()
	rasterizer := svgrasterizer.New()
	fonts := gofontsource.New()
	exporter := psdwriter.New()

	var sink ports.DebugSink
	if c.Bool("debug") {
		if err := fs.MkdirAll(c.String("debug-dir")); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(c.String("debug-dir"), fs, renderer)
	} else {
		sink = nullsink.New()
	}

	backgroundStage := background.NewStage(renderer, sink, log)
	textStage := textblock.NewStage(fonts, renderer, sink, log)
	iconsStage := icons.NewStage(fetcher, rasterizer, renderer, fonts, sink, log)
	composeStage := compose.NewStage(renderer, sink, log)
	encodeStage := encode.NewStage(renderer, log)

	orch := orchestrator.New(
		backgroundStage,
		textStage,
		iconsStage,
		composeStage,
		encodeStage,
		exporter,
		fs,
		sink,
		log,
	)

	log.Info(l10n.F("Rendering %q...", orchConfig.Title))

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", result.OutputPath))

	if path := c.String("summary"); path != "" {
		if err := writeSummary(path, result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}
	return nil
}

// buildOrchestratorConfig resolves the effective configuration: YAML file if
// given, otherwise the size preset, then flag overrides, then inputs.
func buildOrchestratorConfig(c *cli.Context) (orchestrator.Config, error) {
	var orchConfig orchestrator.Config

	if path := c.String("config"); path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return orchestrator.Config{}, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return orchestrator.Config{}, fmt.Errorf("invalid config: %w", err)
		}
		orchConfig = cfg.ToOrchestratorConfig()
	} else {
		var builder *thumbforge.ConfigBuilder
		switch thumbforge.SizePreset(c.String("size")) {
		case thumbforge.SizeHD:
			builder = thumbforge.NewHDConfigBuilder()
		default:
			builder = thumbforge.NewConfigBuilder()
		}
		orchConfig = builder.Build().ToOrchestratorConfig("", "", nil, "")
	}

	if w := c.Int("width"); w > 0 {
		orchConfig.CanvasWidth = w
	}
	if h := c.Int("height"); h > 0 {
		orchConfig.CanvasHeight = h
	}

	orchConfig.Title = normalizeTitle(c.String("title"))
	orchConfig.BackgroundPath = c.String("background")
	orchConfig.IconQueries = splitQueries(c.String("icons"))
	orchConfig.OutputPath = thumbforge.EnsureExtension(c.String("output"), "png")
	orchConfig.LayeredOutputPath = c.String("layered")
	return orchConfig, nil
}

// normalizeTitle converts literal backslash-n sequences, which is how a
// line break survives shell quoting, into real newlines so the manual
// line-break path sees them.
func normalizeTitle(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// splitQueries splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitQueries(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	queries := make([]string, 0, len(parts))
	for _, p := range parts {
		if q := strings.TrimSpace(p); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}

func writeSummary(path string, result orchestrator.RunResult) error {
	builder := summarizer.NewBuilder().
		WithText(summarizer.TextInfo{
			Title:     result.Title,
			Lines:     result.Lines,
			FontSize:  result.FontSize,
			Truncated: result.Truncated,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:         result.OutputPath,
			FileSize:     result.OutputSize,
			LayeredPath:  result.LayeredPath,
			LayerCount:   result.LayerCount,
			CanvasWidth:  result.CanvasWidth,
			CanvasHeight: result.CanvasHeight,
			ElapsedMs:    result.ElapsedMillis,
		})
	for _, icon := range result.Icons {
		builder.WithIcon(icon.Query, icon.Provenance, icon.Detail)
	}

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	writer := summarizer.NewWriter(formatter)
	return writer.Write(path, builder.Build())
}
