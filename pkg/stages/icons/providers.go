package icons

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/user/thumbforge/pkg/pipeline"
	"github.com/user/thumbforge/pkg/ports"
)

// minNetworkDimension is the smallest acceptable dimension for an icon
// fetched from any network source. Smaller results are declined.
const minNetworkDimension = 64

// vectorCDNBase is the icon CDN serving SVGs by slug.
const vectorCDNBase = "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons"

// genericGlyphSlugs is the fixed pool of generic glyphs tried when no slug
// variant matches. A deliberate something-is-better-than-nothing step, not a
// semantic match for the query.
var genericGlyphSlugs = []string{"code", "gear", "star"}

// provider is one step in the ordered resolution chain. A nil image with a
// nil error means the provider declined the query.
type provider interface {
	provenance() pipeline.Provenance
	attempt(ctx context.Context, query string) (image.Image, string, error)
}

// vectorProvider fetches SVGs by slug from the vector CDN and rasterizes
// them at a fixed resolution.
type vectorProvider struct {
	fetcher    ports.Fetcher
	rasterizer ports.VectorRasterizer
	baseURL    string
	dimension  int
	timeout    time.Duration
	generic    bool
	logger     ports.Logger
}

func (p *vectorProvider) provenance() pipeline.Provenance {
	if p.generic {
		return pipeline.ProvenanceVectorGeneric
	}
	return pipeline.ProvenanceVectorCDN
}

func (p *vectorProvider) attempt(ctx context.Context, query string) (image.Image, string, error) {
	slugs := slugVariants(query)
	if p.generic {
		slugs = genericGlyphSlugs
	}

	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		url := fmt.Sprintf("%s/%s.svg", p.baseURL, slug)
		data, err := p.fetcher.Fetch(ctx, url, p.timeout)
		if err != nil {
			p.logger.Debug("Provider attempt failed for %q: %s", query, err)
			continue
		}
		img, err := p.rasterizer.Rasterize(data, p.dimension, p.dimension)
		if err != nil {
			p.logger.Debug("Provider attempt failed for %q: %s", query, err)
			continue
		}
		return img, slug, nil
	}
	return nil, "", nil
}

// catalogProvider matches the query against the curated raster catalog.
// With defaultOnly set it fetches the designated default entry instead,
// as a last networked attempt.
type catalogProvider struct {
	fetcher     ports.Fetcher
	renderer    ports.Renderer
	catalog     map[string]string
	timeout     time.Duration
	defaultOnly bool
	logger      ports.Logger
}

func (p *catalogProvider) provenance() pipeline.Provenance {
	if p.defaultOnly {
		return pipeline.ProvenanceCatalogDefault
	}
	return pipeline.ProvenanceCatalog
}

func (p *catalogProvider) attempt(ctx context.Context, query string) (image.Image, string, error) {
	key, url, ok := p.match(query)
	if !ok {
		return nil, "", nil
	}

	data, err := p.fetcher.Fetch(ctx, url, p.timeout)
	if err != nil {
		p.logger.Debug("Provider attempt failed for %q: %s", query, err)
		return nil, "", nil
	}
	img, err := p.renderer.DecodeImage(data)
	if err != nil {
		p.logger.Debug("Provider attempt failed for %q: %s", query, err)
		return nil, "", nil
	}
	if minDimension(img) < minNetworkDimension {
		p.logger.Debug("Provider attempt failed for %q: %s", query,
			fmt.Sprintf("icon below %dpx minimum", minNetworkDimension))
		return nil, "", nil
	}
	return img, key, nil
}

func (p *catalogProvider) match(query string) (key, url string, ok bool) {
	if p.defaultOnly {
		u, found := p.catalog[defaultCatalogKey]
		return defaultCatalogKey, u, found
	}
	return matchCatalog(p.catalog, query)
}

func minDimension(img image.Image) int {
	b := img.Bounds()
	if b.Dx() < b.Dy() {
		return b.Dx()
	}
	return b.Dy()
}
