package textblock

import (
	"strings"

	"golang.org/x/image/font"
)

// measureWidth returns the advance width of a string in whole pixels.
func measureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapSegment greedily wraps one hard-break segment into lines no wider
// than maxWidth. A single word wider than maxWidth is placed alone on its
// own line, never split.
func wrapSegment(face font.Face, segment string, maxWidth int) []string {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureWidth(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// wrapAll wraps each hard-break segment independently and concatenates the
// resulting lines. Explicit line-break markers in the title are honored
// verbatim before the wrap runs.
func wrapAll(face font.Face, title string, maxWidth int) []string {
	var lines []string
	for _, segment := range strings.Split(title, "\n") {
		lines = append(lines, wrapSegment(face, segment, maxWidth)...)
	}
	return lines
}
