// Package static resolves stored relative image paths into absolute,
// browser-fetchable URLs under the portal's /static/ mount.
package static

import (
	"net/url"
	"strings"
)

// Resolver builds absolute static asset URLs.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver rooted at baseURL (scheme + host, no
// trailing slash required).
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL turns a stored relative path into an absolute URL, or nil when
// the entity has no image. Backslashes (Windows-era upload paths) are
// treated as separators, blank segments are dropped and each segment is
// percent-escaped.
func (r *Resolver) ImageURL(path string) *string {
	segments := normalizeSubpath(path)
	if len(segments) == 0 {
		return nil
	}

	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}

	u := r.baseURL + "/static/" + strings.Join(escaped, "/")
	return &u
}

// normalizeSubpath splits a stored path into clean segments.
func normalizeSubpath(path string) []string {
	cleaned := strings.ReplaceAll(path, `\`, "/")
	var segments []string
	for _, seg := range strings.Split(cleaned, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}
