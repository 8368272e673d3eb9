// Package domain models New Zealand traffic-camera and incident records.
//
// # Data Sources
//
// Camera records come from two structurally different upstreams:
//
//   - The authoritative NZTA ArcGIS feature service, queried directly. It
//     returns a feature collection where each feature carries a geometry and
//     a loosely typed attribute map. Attribute names have drifted across
//     schema versions, so every field is read through a fallback chain.
//   - The legacy trafficnz.info markup feed, reached through third-party
//     relays when direct access is blocked. Two historical element-naming
//     schemes exist for the same node concept (a version migration artifact)
//     and both must be accepted.
//
// # Coordinates
//
// The authoritative service may return geometry either as WGS-84 degrees or
// as EPSG:3857 Web Mercator meters depending on the requested spatial
// reference. A pair outside the ±180/±90 degree envelope is treated as
// projected meters and run through the inverse spherical Mercator formulas
// (Earth radius 6378137 m). A record is only emitted when both coordinates
// resolve to non-zero numbers; (0,0) is never a valid default.
//
// # Image URLs
//
// Legacy records reference images as absolute URLs, root-relative paths, or
// bare "<digits>.jpg" filenames. All forms are normalized to an absolute
// HTTPS URL on the canonical trafficnz.info host before a record leaves the
// pipeline. See [NormalizeImageURL].
//
// # Severity, trend, and confidence
//
// No upstream field carries severity or trend. Both are assigned from a
// fixed weighted candidate set (biased toward low/stable) to preserve depth
// in the consuming UI. This is a deliberate heuristic, not a measurement.
// The draws come from an injectable [Sampler] so tests and fixture tooling
// can supply deterministic sequences. One exception is deterministic: a
// status containing "Construction" always maps to severity "medium".
//
// # Identifiers
//
// Identifiers are unique within a single sync cycle, not across cycles.
// Authoritative identifiers are namespaced with an "nzta-" prefix to avoid
// collision with legacy-sourced identifiers. Legacy nodes that arrive
// without an identifier get a synthesized "node-" prefixed one with a short
// random alphanumeric suffix; uniqueness there is probabilistic.
package domain
