// Package icons implements the icon resolution stage: an ordered chain of
// remote providers with a generated badge as the guaranteed fallback.
package icons

import (
	"context"
	"image"
	"sync"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
	"github.com/user/thumbforge/pkg/shadow"
)

// Stage resolves icon queries into placed-ready assets.
type Stage struct {
	fetcher    ports.Fetcher
	rasterizer ports.VectorRasterizer
	renderer   ports.Renderer
	fonts      ports.FontSource
	sink       ports.DebugSink
	logger     ports.Logger
	cdnBase    string
	catalog    map[string]string
}

// NewStage creates a new icons stage.
func NewStage(
	fetcher ports.Fetcher,
	rasterizer ports.VectorRasterizer,
	renderer ports.Renderer,
	fonts ports.FontSource,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		fetcher:    fetcher,
		rasterizer: rasterizer,
		renderer:   renderer,
		fonts:      fonts,
		sink:       sink,
		logger:     logger.WithComponent("icons"),
		cdnBase:    vectorCDNBase,
		catalog:    rasterCatalog,
	}
}

// Execute resolves all queries concurrently. Results are returned in input
// query order regardless of completion order. Resolution never fails a
// query; the generated badge guarantees an asset for every entry.
func (s *Stage) Execute(ctx context.Context, input pipeline.IconsInput) (pipeline.IconsResult, error) {
	if len(input.Queries) == 0 {
		return pipeline.IconsResult{Assets: []pipeline.IconAsset{}}, nil
	}

	// Non-fallback assets must meet the minimum dimension, so the raster
	// target can never be configured below it.
	if input.MaxDimension < minNetworkDimension {
		input.MaxDimension = minNetworkDimension
	}

	workers := input.Workers
	if workers <= 0 || workers > len(input.Queries) {
		workers = len(input.Queries)
	}
	s.logger.Debug("Resolving %d icons with %d workers", len(input.Queries), workers)

	providers := s.buildProviders(input)

	assets := make([]pipeline.IconAsset, len(input.Queries))
	jobs := make(chan int, len(input.Queries))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				assets[idx] = s.resolveOne(ctx, providers, input, input.Queries[idx])
			}
		}()
	}
	for i := range input.Queries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return pipeline.IconsResult{}, err
	}

	if s.sink.Enabled() {
		for i, asset := range assets {
			s.sink.SaveIcon(i, asset.Query, asset.Image)
		}
	}

	return pipeline.IconsResult{Assets: assets}, nil
}

// buildProviders assembles the resolution chain in its fixed order.
func (s *Stage) buildProviders(input pipeline.IconsInput) []provider {
	base := s.cdnBase
	if input.CDNBase != "" {
		base = input.CDNBase
	}
	return []provider{
		&vectorProvider{
			fetcher:    s.fetcher,
			rasterizer: s.rasterizer,
			baseURL:    base,
			dimension:  input.MaxDimension,
			timeout:    input.Timeout,
			logger:     s.logger,
		},
		&vectorProvider{
			fetcher:    s.fetcher,
			rasterizer: s.rasterizer,
			baseURL:    base,
			dimension:  input.MaxDimension,
			timeout:    input.Timeout,
			generic:    true,
			logger:     s.logger,
		},
		&catalogProvider{
			fetcher:  s.fetcher,
			renderer: s.renderer,
			catalog:  s.catalog,
			timeout:  input.Timeout,
			logger:   s.logger,
		},
		&catalogProvider{
			fetcher:     s.fetcher,
			renderer:    s.renderer,
			catalog:     s.catalog,
			timeout:     input.Timeout,
			defaultOnly: true,
			logger:      s.logger,
		},
	}
}

// resolveOne walks the provider chain for a single query, first success
// wins, and falls through to the generated badge.
func (s *Stage) resolveOne(ctx context.Context, providers []provider, input pipeline.IconsInput, query string) pipeline.IconAsset {
	for _, p := range providers {
		if ctx.Err() != nil {
			break
		}
		img, detail, err := p.attempt(ctx, query)
		if err != nil || img == nil {
			continue
		}
		s.logger.Debug("Icon %q resolved via %s (%s)", query, p.provenance(), detail)
		return pipeline.IconAsset{
			Query:      query,
			Provenance: p.provenance(),
			Detail:     detail,
			Image:      s.finish(img, input),
		}
	}

	img, label := generateBadge(s.renderer, s.fonts, query, input.MaxDimension)
	s.logger.Debug("Icon %q fell back to generated badge", query)
	return pipeline.IconAsset{
		Query:      query,
		Provenance: pipeline.ProvenanceGenerated,
		Detail:     label,
		Image:      s.finish(img, input),
	}
}

// finish resizes an icon to the placement width and applies the drop shadow.
func (s *Stage) finish(img image.Image, input pipeline.IconsInput) image.Image {
	b := img.Bounds()
	if input.MaxWidth > 0 && b.Dx() > input.MaxWidth {
		h := b.Dy() * input.MaxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		img = s.renderer.ResizeImage(img, input.MaxWidth, h)
	}

	if input.Shadow.Enabled {
		img = shadow.Drop(img,
			image.Pt(input.Shadow.Offset.X, input.Shadow.Offset.Y),
			input.Shadow.Blur,
			input.Shadow.Color,
		)
	}
	return img
}
