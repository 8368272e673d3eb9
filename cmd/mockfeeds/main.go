// Command mockfeeds serves synthetic upstream feeds for local development:
// an authoritative feature collection on /arcgis and a legacy markup document
// on /legacy. Failure modes let the fallback chain be exercised end to end
// without touching real endpoints.
//
// Usage:
//
//	go run ./cmd/mockfeeds -addr :9901 -cameras 12
//	AUTHORITATIVE_URL=http://localhost:9901/arcgis \
//	LEGACY_FEED_URL=http://localhost:9901/legacy \
//	go run ./cmd/camerad
//
// Flags -fail-authoritative and -fail-legacy simulate upstream collapse;
// -projected serves the feature geometry as Web Mercator meters, and
// -legacy-scheme selects which historical element naming the legacy document
// uses.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
)

// mockSite is one synthetic camera location along SH1.
type mockSite struct {
	id        int
	name      string
	region    string
	lat, lon  float64
	direction string
}

func main() {
	addr := flag.String("addr", ":9901", "listen address")
	cameras := flag.Int("cameras", 8, "number of synthetic cameras per feed")
	projected := flag.Bool("projected", false, "serve authoritative geometry as Web Mercator meters")
	legacyScheme := flag.String("legacy-scheme", "camera", "legacy element scheme: camera or trafficCamera")
	failAuthoritative := flag.Bool("fail-authoritative", false, "serve 503 from /arcgis")
	failLegacy := flag.Bool("fail-legacy", false, "serve an HTML error page from /legacy")
	flag.Parse()

	if *legacyScheme != "camera" && *legacyScheme != "trafficCamera" {
		log.Fatalf("unknown legacy scheme %q", *legacyScheme)
	}

	sites := makeSites(*cameras)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /arcgis", func(w http.ResponseWriter, _ *http.Request) {
		if *failAuthoritative {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(featureCollection(sites, *projected)); err != nil {
			log.Printf("encode feature collection: %v", err)
		}
	})
	mux.HandleFunc("GET /legacy", func(w http.ResponseWriter, _ *http.Request) {
		if *failLegacy {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<!DOCTYPE html><html><body><h1>502 Bad Gateway</h1></body></html>")
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, legacyDocument(sites, *legacyScheme))
	})

	log.Printf("mock feeds listening on %s (cameras=%d projected=%v scheme=%s)",
		*addr, *cameras, *projected, *legacyScheme)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

// makeSites spreads synthetic cameras between Auckland and Wellington.
func makeSites(n int) []mockSite {
	regions := []string{"Auckland", "Waikato", "Manawatu-Whanganui", "Wellington"}
	directions := []string{"North", "South", "East", "West"}

	sites := make([]mockSite, n)
	for i := range sites {
		frac := float64(i) / math.Max(1, float64(n-1))
		sites[i] = mockSite{
			id:        400 + i,
			name:      fmt.Sprintf("SH1 Marker %d", i+1),
			region:    regions[i*len(regions)/max(n, 1)],
			lat:       -36.85 + frac*(-41.29 - -36.85),
			lon:       174.76 + frac*(174.78-174.76),
			direction: directions[i%len(directions)],
		}
	}
	return sites
}

func featureCollection(sites []mockSite, projected bool) map[string]any {
	features := make([]map[string]any, len(sites))
	for i, s := range sites {
		geometry := map[string]any{"coordinates": []float64{s.lon, s.lat}}
		if projected {
			x, y := domain.ToWebMercator(s.lat, s.lon)
			geometry = map[string]any{"x": x, "y": y}
		}
		features[i] = map[string]any{
			"geometry": geometry,
			"properties": map[string]any{
				"id":        fmt.Sprintf("%d", s.id),
				"name":      s.name,
				"region":    s.region,
				"direction": s.direction,
				"imageUrl":  fmt.Sprintf("%d.jpg", s.id),
				"offline":   "false",
			},
		}
	}
	return map[string]any{"features": features}
}

func legacyDocument(sites []mockSite, scheme string) string {
	root := scheme + "s"

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<" + root + ">\n")
	for _, s := range sites {
		fmt.Fprintf(&b, "\t<%s>\n", scheme)
		fmt.Fprintf(&b, "\t\t<id>%d</id>\n", s.id)
		fmt.Fprintf(&b, "\t\t<name>%s</name>\n", s.name)
		fmt.Fprintf(&b, "\t\t<region>%s</region>\n", s.region)
		fmt.Fprintf(&b, "\t\t<direction>%s</direction>\n", s.direction)
		b.WriteString("\t\t<status>Operational</status>\n")
		fmt.Fprintf(&b, "\t\t<imageUrl>%d.jpg</imageUrl>\n", s.id)
		b.WriteString("\t\t<location>\n")
		fmt.Fprintf(&b, "\t\t\t<latitude>%.4f</latitude>\n", s.lat)
		fmt.Fprintf(&b, "\t\t\t<longitude>%.4f</longitude>\n", s.lon)
		b.WriteString("\t\t</location>\n")
		fmt.Fprintf(&b, "\t</%s>\n", scheme)
	}
	b.WriteString("</" + root + ">\n")
	return b.String()
}
