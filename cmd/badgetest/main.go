package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/user/thumbforge/pkg/adapters/ggrenderer"
	"github.com/user/thumbforge/pkg/adapters/gofontsource"
	"github.com/user/thumbforge/pkg/stages/icons"
)

func main() {
	renderer := ggrenderer.New()
	fonts := gofontsource.New()

	queries := []string{"python", "my custom tool", "nonexistent-framework-xyz", "X"}
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		for _, query := range queries {
			img, label := icons.GenerateBadge(renderer, fonts, query, size)

			filename := fmt.Sprintf("tmp/badge_%s_%d.png", label, size)
			f, err := os.Create(filename)
			if err != nil {
				fmt.Printf("Error creating file: %v\n", err)
				continue
			}

			if err := png.Encode(f, img); err != nil {
				fmt.Printf("Error encoding PNG: %v\n", err)
			}
			f.Close()

			fmt.Printf("Generated %s for %q (%dx%d)\n", filename, query, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}
