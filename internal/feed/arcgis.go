package feed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
)

// Placeholder strings for optional attributes the upstream omits. Records are
// never emitted with undefined display fields.
const (
	placeholderName        = "Traffic Camera"
	placeholderDescription = "Live roadside traffic camera"
	placeholderRegion      = "New Zealand"
	placeholderDirection   = "Unknown"
)

// authoritativeIDPrefix namespaces authoritative identifiers so they can
// never collide with legacy-sourced ones.
const authoritativeIDPrefix = "nzta-"

// FeatureCollection mirrors the authoritative feature service response. The
// service has returned both GeoJSON ("properties") and classic ArcGIS JSON
// ("attributes") shapes over its schema history, so both are accepted.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

// Feature is a single camera feature with loosely typed attributes.
type Feature struct {
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
	Attributes map[string]any `json:"attributes"`
}

// Geometry carries either GeoJSON coordinates (longitude, latitude order) or
// classic ArcGIS x/y fields. Either may be degrees or Web Mercator meters
// depending on the requested spatial reference.
type Geometry struct {
	Coordinates []float64 `json:"coordinates"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
}

// ParseFeatureCollection decodes an authoritative response into canonical
// records. Features without two non-zero resolvable coordinates are
// discarded. A decode failure is returned to the caller so the orchestrator
// can log it and move on to the relay pool.
func ParseFeatureCollection(data []byte, sampler domain.Sampler) ([]domain.Camera, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	cams := make([]domain.Camera, 0, len(fc.Features))
	for i, f := range fc.Features {
		cam, ok := mapFeature(f, i, sampler)
		if !ok {
			continue
		}
		cams = append(cams, cam)
	}
	return cams, nil
}

// mapFeature converts one feature into a Camera. ok is false when the
// feature has no usable coordinates.
func mapFeature(f Feature, index int, sampler domain.Sampler) (domain.Camera, bool) {
	lat, lon, ok := featureCoordinates(f.Geometry)
	if !ok {
		return domain.Camera{}, false
	}

	attrs := f.Properties
	if len(attrs) == 0 {
		attrs = f.Attributes
	}

	// Identifier fallback chain, newest schema first.
	id := attrString(attrs, "id", "cameraId", "OBJECTID", "objectid")
	if id == "" {
		id = "feature-" + strconv.Itoa(index)
	}

	status := domain.StatusOperational
	if attrString(attrs, "offline") == "true" {
		status = domain.StatusOffline
	}

	severity, trend, confidence := domain.Classify(sampler, status)

	return domain.Camera{
		ID:          authoritativeIDPrefix + id,
		Name:        attrStringOr(attrs, placeholderName, "name", "cameraName", "title"),
		Description: attrStringOr(attrs, placeholderDescription, "description", "summary"),
		ImageURL:    domain.NormalizeImageURL(attrString(attrs, "imageUrl", "image_url", "url")),
		Region:      attrStringOr(attrs, placeholderRegion, "region", "area", "tasRegion"),
		Lat:         lat,
		Lon:         lon,
		Direction:   attrStringOr(attrs, placeholderDirection, "direction", "viewDirection"),
		Status:      status,
		Source:      domain.SourceAuthoritative,
		Severity:    severity,
		Trend:       trend,
		Confidence:  confidence,
		LastUpdated: updateTime(attrs),
	}, true
}

// featureCoordinates resolves a geometry to WGS-84 degrees, converting from
// Web Mercator when the values cannot be degrees. Both coordinates must end
// up non-zero; (0,0) is never emitted as a default.
func featureCoordinates(g Geometry) (lat, lon float64, ok bool) {
	x, y := g.X, g.Y
	if len(g.Coordinates) == 2 {
		x, y = g.Coordinates[0], g.Coordinates[1]
	}
	if domain.LooksProjected(x, y) {
		lat, lon = domain.FromWebMercator(x, y)
	} else {
		lon, lat = x, y
	}
	if lat == 0 || lon == 0 {
		return 0, 0, false
	}
	return lat, lon, true
}

// updateTime parses the feature's update-time attribute, falling back to the
// current clock when absent or unparseable. ArcGIS layers encode times as
// epoch milliseconds; older exports used RFC 3339 strings.
func updateTime(attrs map[string]any) string {
	switch v := attrs["lastUpdated"].(type) {
	case float64:
		if v > 0 {
			return domain.DisplayTime(time.UnixMilli(int64(v)).UTC())
		}
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return domain.DisplayTime(t.UTC())
		}
	}
	return domain.DisplayTime(domain.Now())
}

// attrString returns the first present, non-empty attribute among keys,
// rendering numeric values without a decimal point (ArcGIS object IDs decode
// as float64).
func attrString(attrs map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := attrs[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func attrStringOr(attrs map[string]any, fallback string, keys ...string) string {
	if s := attrString(attrs, keys...); s != "" {
		return s
	}
	return fallback
}
