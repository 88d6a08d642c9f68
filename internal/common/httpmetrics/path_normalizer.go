package httpmetrics

import (
	"net/http"
	"regexp"
	"strings"
)

var (
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// RouteLabel prefers the ServeMux pattern that matched r so user ids never
// become label values. Unmatched requests fall back to NormalizePath.
func RouteLabel(r *http.Request) string {
	if r.Pattern != "" {
		pattern := r.Pattern
		if idx := strings.IndexByte(pattern, ' '); idx != -1 {
			pattern = pattern[idx+1:]
		}
		return pattern
	}
	return NormalizePath(r.URL.Path)
}

// NormalizePath keeps the first path segment and replaces every following
// segment with {param}.
func NormalizePath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}

	normalized := uuidRegex.ReplaceAllString(path, "{id}")

	parts := strings.Split(strings.Trim(normalized, "/"), "/")
	for i := 1; i < len(parts); i++ {
		parts[i] = "{param}"
	}

	return "/" + strings.Join(parts, "/")
}
