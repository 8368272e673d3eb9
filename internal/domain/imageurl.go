package domain

import (
	"regexp"
	"strings"
)

const (
	// canonicalBaseURL is the HTTPS host all legacy image references resolve against.
	canonicalBaseURL = "https://www.trafficnz.info"
	// cameraImageDir is where bare camera image filenames live on the legacy host.
	cameraImageDir = canonicalBaseURL + "/camera/images/"

	legacyHostMarker = "trafficnz.info"
)

// bareImageRe matches bare legacy image filenames like "402.jpg".
var bareImageRe = regexp.MustCompile(`^\d+\.jpg$`)

// NormalizeImageURL rewrites an upstream image reference to an absolute,
// HTTPS-upgraded URL. Rules apply in order, first match wins:
//
//  1. absolute URL on a non-legacy host: upgrade http to https, otherwise unchanged
//  2. root-relative path: prefix with the canonical base URL
//  3. bare "<digits>.jpg" filename: prefix with the camera image directory
//  4. any other relative string: same image-directory prefix
//
// A final pass rewrites any lingering plain-HTTP legacy-host prefix to the
// HTTPS canonical host. The whole function is idempotent.
func NormalizeImageURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"):
		if !strings.Contains(s, legacyHostMarker) && strings.HasPrefix(s, "http://") {
			s = "https://" + strings.TrimPrefix(s, "http://")
		}
	case strings.HasPrefix(s, "/"):
		s = canonicalBaseURL + s
	case bareImageRe.MatchString(s):
		s = cameraImageDir + s
	default:
		s = cameraImageDir + s
	}

	// Legacy-host HTTP references may survive rule 1; rewrite them here so the
	// pipeline never emits a plain-HTTP trafficnz URL.
	s = strings.Replace(s, "http://www.trafficnz.info", canonicalBaseURL, 1)
	s = strings.Replace(s, "http://trafficnz.info", canonicalBaseURL, 1)
	return s
}
