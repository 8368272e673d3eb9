// Package relay models the third-party relay endpoints used to reach the
// legacy feed when direct access is blocked.
package relay

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Relay describes one relay endpoint: how to build a request through it and
// how to recover the feed payload from its response. Descriptors are static
// configuration, read-only at runtime.
type Relay struct {
	// Name identifies the relay in logs and metrics.
	Name string

	// Prefix is the relay URL the target endpoint is appended to.
	Prefix string

	// EncodeTarget selects the request-construction rule: percent-encode the
	// target before appending, or append it raw. Using the wrong rule for a
	// relay yields requests it rejects or mishandles.
	EncodeTarget bool

	// EnvelopeField names the JSON field wrapping the payload. Empty means
	// the response body is the payload itself.
	EnvelopeField string
}

// BuildURL constructs the full request URL for a target endpoint.
func (r Relay) BuildURL(target string) string {
	if r.EncodeTarget {
		return r.Prefix + url.QueryEscape(target)
	}
	return r.Prefix + target
}

// Unwrap recovers the feed payload from a relay response body, extracting the
// envelope field when the relay wraps its responses.
func (r Relay) Unwrap(body []byte) (string, error) {
	if r.EnvelopeField == "" {
		return string(body), nil
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("relay %s: decode envelope: %w", r.Name, err)
	}
	payload, ok := envelope[r.EnvelopeField].(string)
	if !ok {
		return "", fmt.Errorf("relay %s: envelope field %q missing or not a string", r.Name, r.EnvelopeField)
	}
	return payload, nil
}

// DefaultPool returns the relay preference list in fixed declared order. The
// first entry is believed most reliable; the orchestrator walks the list once
// and stops at the first success, so order is policy, not an implementation
// detail.
func DefaultPool() []Relay {
	return []Relay{
		{
			Name:          "allorigins",
			Prefix:        "https://api.allorigins.win/get?url=",
			EncodeTarget:  true,
			EnvelopeField: "contents",
		},
		{
			Name:         "corsproxy",
			Prefix:       "https://corsproxy.io/?url=",
			EncodeTarget: true,
		},
		{
			Name:   "codetabs",
			Prefix: "https://api.codetabs.com/v1/proxy?quest=",
		},
		{
			Name:   "thingproxy",
			Prefix: "https://thingproxy.freeboard.io/fetch/",
		},
	}
}
