package feed

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
)

// legacyNode is one camera entry from the trafficnz markup feed. Coordinates
// may be nested under a location sub-element or present directly on the node;
// the nested path wins when both exist.
type legacyNode struct {
	ID          string `xml:"id"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
	ImageURL    string `xml:"imageUrl"`
	Region      string `xml:"region"`
	Direction   string `xml:"direction"`
	Status      string `xml:"status"`
	Latitude    string `xml:"latitude"`
	Longitude   string `xml:"longitude"`
	Location    struct {
		Latitude  string `xml:"latitude"`
		Longitude string `xml:"longitude"`
	} `xml:"location"`
}

// legacyNodeTag reports whether an element name is one of the two historical
// node tag schemes. The feed renamed its elements during a version migration
// and both forms remain in the wild.
func legacyNodeTag(name string) bool {
	return strings.EqualFold(name, "camera") || strings.EqualFold(name, "trafficCamera")
}

// ParseLegacy extracts canonical records from a legacy markup document. A
// document that is not well-formed markup yields whatever was decoded before
// the error, which for a garbage payload is an empty slice; the caller treats
// zero records as relay failure. ParseLegacy never returns an error.
func ParseLegacy(data []byte, sampler domain.Sampler) []domain.Camera {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var cams []domain.Camera

	for {
		tok, err := decoder.Token()
		if err != nil {
			// io.EOF for a clean end, anything else for malformed markup.
			// Either way the records decoded so far are all there is.
			return cams
		}

		se, ok := tok.(xml.StartElement)
		if !ok || !legacyNodeTag(se.Name.Local) {
			continue
		}

		var node legacyNode
		if err := decoder.DecodeElement(&node, &se); err != nil {
			return cams
		}
		if cam, ok := mapLegacyNode(node, sampler); ok {
			cams = append(cams, cam)
		}
	}
}

// mapLegacyNode converts one decoded node into a Camera. ok is false when
// the node lacks two non-zero coordinates.
func mapLegacyNode(node legacyNode, sampler domain.Sampler) (domain.Camera, bool) {
	lat, lon, ok := legacyCoordinates(node)
	if !ok {
		return domain.Camera{}, false
	}

	status := strings.TrimSpace(node.Status)
	if status == "" {
		status = domain.StatusOperational
	}

	id := strings.TrimSpace(node.ID)
	if id == "" {
		id = domain.SyntheticNodeID(sampler)
	}

	severity, trend, confidence := domain.Classify(sampler, status)

	return domain.Camera{
		ID:          id,
		Name:        stringOr(node.Name, placeholderName),
		Description: stringOr(node.Description, placeholderDescription),
		ImageURL:    domain.NormalizeImageURL(node.ImageURL),
		Region:      stringOr(node.Region, placeholderRegion),
		Lat:         lat,
		Lon:         lon,
		Direction:   stringOr(node.Direction, placeholderDirection),
		Status:      status,
		Source:      domain.SourceLegacy,
		Severity:    severity,
		Trend:       trend,
		Confidence:  confidence,
		LastUpdated: domain.DisplayTime(domain.Now()),
	}, true
}

// legacyCoordinates resolves a node's coordinates, preferring the nested
// location element over top-level tags. Both must parse to non-zero numbers.
func legacyCoordinates(node legacyNode) (lat, lon float64, ok bool) {
	latStr, lonStr := node.Location.Latitude, node.Location.Longitude
	if strings.TrimSpace(latStr) == "" || strings.TrimSpace(lonStr) == "" {
		latStr, lonStr = node.Latitude, node.Longitude
	}

	lat = parseFloatOrZero(latStr)
	lon = parseFloatOrZero(lonStr)
	if lat == 0 || lon == 0 {
		return 0, 0, false
	}
	return lat, lon, true
}

func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func stringOr(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
