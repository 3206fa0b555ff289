package icons

import (
	"sort"
	"strings"
)

// defaultCatalogKey is the entry fetched when nothing else matches.
const defaultCatalogKey = "code"

// rasterCatalog maps well-known technology names to pre-resolved raster
// icon URLs. Matching is exact key first, then substring containment in
// either direction over the keys in sorted order, so results are stable.
var rasterCatalog = map[string]string{
	"angular":    "https://img.icons8.com/color/480/angularjs.png",
	"c":          "https://img.icons8.com/color/480/c-programming.png",
	"code":       "https://img.icons8.com/color/480/source-code.png",
	"cplusplus":  "https://img.icons8.com/color/480/c-plus-plus-logo.png",
	"csharp":     "https://img.icons8.com/color/480/c-sharp-logo.png",
	"css":        "https://img.icons8.com/color/480/css3.png",
	"docker":     "https://img.icons8.com/color/480/docker.png",
	"git":        "https://img.icons8.com/color/480/git.png",
	"go":         "https://img.icons8.com/color/480/golang.png",
	"html":       "https://img.icons8.com/color/480/html-5.png",
	"java":       "https://img.icons8.com/color/480/java-coffee-cup-logo.png",
	"javascript": "https://img.icons8.com/color/480/javascript.png",
	"kotlin":     "https://img.icons8.com/color/480/kotlin.png",
	"kubernetes": "https://img.icons8.com/color/480/kubernetes.png",
	"linux":      "https://img.icons8.com/color/480/linux.png",
	"mongodb":    "https://img.icons8.com/color/480/mongodb.png",
	"mysql":      "https://img.icons8.com/color/480/mysql-logo.png",
	"nodejs":     "https://img.icons8.com/color/480/nodejs.png",
	"php":        "https://img.icons8.com/color/480/php.png",
	"postgresql": "https://img.icons8.com/color/480/postgreesql.png",
	"python":     "https://img.icons8.com/color/480/python.png",
	"react":      "https://img.icons8.com/color/480/react-native.png",
	"redis":      "https://img.icons8.com/color/480/redis.png",
	"ruby":       "https://img.icons8.com/color/480/ruby-programming-language.png",
	"rust":       "https://img.icons8.com/color/480/rust-programming-language.png",
	"swift":      "https://img.icons8.com/color/480/swift.png",
	"typescript": "https://img.icons8.com/color/480/typescript.png",
	"vue":        "https://img.icons8.com/color/480/vue-js.png",
}

// catalogKeys returns the catalog keys in sorted order.
func catalogKeys(catalog map[string]string) []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchCatalog finds a catalog entry for the query. Exact match wins; after
// that the first key (in sorted order) containing the query, or contained in
// it, is used. Substring matching is a heuristic, not a relevance ranking;
// short queries can match unintended keys, which is accepted for the sake of
// a deterministic fallback order.
func matchCatalog(catalog map[string]string, query string) (key, url string, ok bool) {
	q := stripNonAlnum(strings.ToLower(query), "")
	if q == "" {
		return "", "", false
	}

	if u, found := catalog[q]; found {
		return q, u, true
	}

	for _, k := range catalogKeys(catalog) {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return k, catalog[k], true
		}
	}
	return "", "", false
}
