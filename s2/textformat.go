package s2

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePoint parses a point written as "lat:lng" in degrees.
func ParsePoint(s string) (Point, error) {
	ll, err := parseLatLng(s)
	if err != nil {
		return Point{}, err
	}
	return PointFromLatLng(ll), nil
}

// ParsePoints parses a comma separated list of "lat:lng" pairs, e.g.
// "-20:150, 10:-120, 0.123:-170.652". Empty input yields an empty slice.
func ParsePoints(s string) ([]Point, error) {
	points := []Point{}
	if strings.TrimSpace(s) == "" {
		return points, nil
	}
	for i, tok := range strings.Split(s, ",") {
		p, err := ParsePoint(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		points = append(points, p)
	}
	return points, nil
}

func parseLatLng(s string) (LatLng, error) {
	s = strings.TrimSpace(s)
	degs := strings.Split(s, ":")
	if len(degs) != 2 {
		return LatLng{}, errors.Errorf("invalid lat:lng %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(degs[0]), 64)
	if err != nil {
		return LatLng{}, errors.Wrapf(err, "invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(degs[1]), 64)
	if err != nil {
		return LatLng{}, errors.Wrapf(err, "invalid longitude in %q", s)
	}
	return LatLngFromDegrees(lat, lng), nil
}

// FormatPoint writes p as "lat:lng" in degrees.
func FormatPoint(p Point) string {
	ll := LatLngFromPoint(p)
	return strconv.FormatFloat(ll.Lat.Degrees(), 'g', 15, 64) + ":" +
		strconv.FormatFloat(ll.Lng.Degrees(), 'g', 15, 64)
}

// FormatPoints writes the points as a comma separated list of "lat:lng"
// pairs, the inverse of ParsePoints.
func FormatPoints(points []Point) string {
	strs := make([]string, len(points))
	for i, p := range points {
		strs[i] = FormatPoint(p)
	}
	return strings.Join(strs, ", ")
}
