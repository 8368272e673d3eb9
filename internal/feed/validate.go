// Package feed parses the two upstream camera feed formats into canonical
// domain records: the authoritative ArcGIS feature collection and the legacy
// trafficnz markup document.
package feed

import "strings"

// IsUsablePayload reports whether a relay response body looks like feed data.
// Relays that fail often return their own human-readable HTML error page with
// a 200 status; those must be rejected before parsing, as must empty bodies.
func IsUsablePayload(body string) bool {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return false
	}
	return !looksLikeHTMLPage(trimmed)
}

// looksLikeHTMLPage detects a document that opens with a DOCTYPE declaration
// or a root page tag. The legacy feed is markup too, but its root elements
// are never html.
func looksLikeHTMLPage(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}
