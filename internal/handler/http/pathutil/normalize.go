// Package pathutil normalizes request paths for use as metric labels.
package pathutil

import (
	"strings"

	"news-explorer/internal/domain/entity"
)

// IDPlaceholder replaces object identifiers in normalized paths.
const IDPlaceholder = ":id"

// NormalizePath replaces every object identifier segment with ":id" so that
// per-resource paths share one label. Query strings and a trailing slash are
// dropped.
//
//	NormalizePath("/api/articles/65f1c0ffee0123456789abcd") // "/api/articles/:id"
//	NormalizePath("/api/news/search?q=go")                  // "/api/news/search"
//	NormalizePath("/health/")                               // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if !strings.Contains(path, "/") {
		return path
	}

	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if entity.IsObjectID(seg) {
			segments[i] = IDPlaceholder
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}
