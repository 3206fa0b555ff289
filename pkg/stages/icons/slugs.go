package icons

import (
	"strings"
)

// maxSlugVariants caps how many slug candidates a single query produces.
const maxSlugVariants = 4

// wholeQuerySubstitutions maps normalized queries to their canonical CDN
// slug. Applied before any other variant derivation.
var wholeQuerySubstitutions = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"golang":   "go",
	"k8s":      "kubernetes",
	"postgres": "postgresql",
}

// slugVariants derives the ordered list of CDN slug candidates for a query.
// The derivation order is fixed; tests depend on it:
//  1. whole-query substitution of the stripped slug, when one exists
//  2. the stripped slug (lowercased, symbols mapped, non-alphanumerics removed)
//  3. the dotted form, with "." kept as "dot" (node.js -> nodedotjs)
//  4. an (n)dotjs form for slugs ending in "js" (nodejs -> nodedotjs)
//
// Duplicates are removed preserving first occurrence.
func slugVariants(query string) []string {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return nil
	}

	// Symbol names the CDN spells out.
	mapped := strings.NewReplacer(
		"+", "plus",
		"#", "sharp",
		"&", "and",
	).Replace(lowered)

	stripped := stripNonAlnum(mapped, "")
	if stripped == "" {
		return nil
	}
	dotted := stripNonAlnum(strings.ReplaceAll(mapped, ".", "dot"), "")

	var variants []string
	if subst, ok := wholeQuerySubstitutions[stripped]; ok {
		variants = append(variants, subst)
	}
	variants = append(variants, stripped, dotted)
	if strings.HasSuffix(stripped, "js") && len(stripped) > 2 {
		variants = append(variants, stripped[:len(stripped)-2]+"dotjs")
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == maxSlugVariants {
			break
		}
	}
	return out
}

// stripNonAlnum removes every rune outside [a-z0-9], replacing it with repl.
func stripNonAlnum(s, repl string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteString(repl)
		}
	}
	return b.String()
}
