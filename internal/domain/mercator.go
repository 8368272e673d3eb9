package domain

import "math"

// earthRadiusMeters is the sphere radius used by the Web Mercator projection
// (EPSG:3857).
const earthRadiusMeters = 6378137.0

// FromWebMercator converts planar projected meters to WGS-84 degrees using
// the inverse spherical Mercator formulas.
func FromWebMercator(x, y float64) (lat, lon float64) {
	lon = x * 180 / (math.Pi * earthRadiusMeters)
	lat = (2*math.Atan(math.Exp(y/earthRadiusMeters)) - math.Pi/2) * 180 / math.Pi
	return lat, lon
}

// ToWebMercator is the forward projection. The pipeline itself never projects
// forward; this exists for round-trip tests and the mock feed generator.
func ToWebMercator(lat, lon float64) (x, y float64) {
	x = lon * math.Pi * earthRadiusMeters / 180
	y = earthRadiusMeters * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
	return x, y
}

// LooksProjected reports whether a coordinate pair is plausibly Web Mercator
// meters rather than degrees. Any value outside the degree envelope cannot be
// a geographic coordinate.
func LooksProjected(x, y float64) bool {
	return math.Abs(x) > 180 || math.Abs(y) > 90
}
