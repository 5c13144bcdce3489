// Package geo renders supply routes as curved polylines. ArcLine
// interpolates along the great circle between two points and lifts the
// midpoint with a sine profile so the route arcs above a flat projection.
package geo

import "math"

// Point is a longitude/latitude pair in degrees (EPSG:4326 order).
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

const antipodalEps = 0.00001

// ArcLine returns steps+1 points (or two concatenated half arcs when the
// route is split) between src and dst. Nearly antipodal endpoints and
// routes crossing the date line are split at a midpoint so that each half
// interpolates over a well-conditioned angle.
func ArcLine(src, dst Point, steps int) []Point {
	if steps <= 0 {
		steps = 100
	}

	d := centralAngle(src, dst)

	if math.Abs(d-math.Pi) < antipodalEps {
		// Antipodal endpoints: the great circle between them is not
		// unique, so pin an explicit midpoint and arc through it.
		midLng := src.Lng + dst.Lng
		if math.Abs(src.Lng-dst.Lng) > 180 {
			midLng += 360
		}
		mid := Point{Lng: midLng / 2, Lat: (src.Lat + dst.Lat) / 2}

		return append(halfArc(src, mid, steps/2), halfArc(mid, dst, steps/2)...)
	}

	if math.Abs(src.Lng-dst.Lng) > 180 {
		// Short path crosses the date line; split there so the slerp does
		// not run the long way around the globe.
		var midLng float64
		if src.Lng < dst.Lng {
			midLng = (src.Lng - 180 + dst.Lng + 180) / 2
			if midLng < -180 {
				midLng += 360
			}
		} else {
			midLng = (src.Lng + 180 + dst.Lng - 180) / 2
			if midLng > 180 {
				midLng -= 360
			}
		}
		mid := Point{Lng: midLng, Lat: (src.Lat + dst.Lat) / 2}

		return append(halfArc(src, mid, steps/2), halfArc(mid, dst, steps/2)...)
	}

	return halfArc(src, dst, steps)
}

// halfArc spherically interpolates steps+1 points between src and dst and
// elevates each one by a sine-shaped height before projecting back to
// longitude/latitude.
func halfArc(src, dst Point, steps int) []Point {
	if steps <= 0 {
		steps = 1
	}

	srcLng, srcLat := radians(src)
	dstLng, dstLat := radians(dst)

	d := centralAngle(src, dst)
	sinD := math.Sin(d)

	coords := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		var a, b float64
		if sinD < 1e-12 {
			// Coincident endpoints: slerp degenerates, interpolate linearly.
			a, b = 1-t, t
		} else {
			a = math.Sin((1-t)*d) / sinD
			b = math.Sin(t*d) / sinD
		}

		x := a*math.Cos(srcLat)*math.Cos(srcLng) + b*math.Cos(dstLat)*math.Cos(dstLng)
		y := a*math.Cos(srcLat)*math.Sin(srcLng) + b*math.Cos(dstLat)*math.Sin(dstLng)
		z := a*math.Sin(srcLat) + b*math.Sin(dstLat)

		// Height profile peaks mid-route and scales with the distance,
		// capped so short hops still get a visible bump.
		height := math.Sin(math.Pi*t) * math.Min(0.7, d*0.3)
		magnitude := 1.0 + height*0.5

		ex, ey, ez := x*magnitude, y*magnitude, z*magnitude

		coords = append(coords, Point{
			Lng: math.Atan2(ey, ex) * 180 / math.Pi,
			Lat: math.Atan2(ez, math.Sqrt(ex*ex+ey*ey)) * 180 / math.Pi,
		})
	}

	return coords
}

// centralAngle is the great-circle angle between two points, in radians.
func centralAngle(p, q Point) float64 {
	pLng, pLat := radians(p)
	qLng, qLat := radians(q)

	cosD := math.Sin(pLat)*math.Sin(qLat) +
		math.Cos(pLat)*math.Cos(qLat)*math.Cos(pLng-qLng)

	// Clamp against floating point drift before acos.
	return math.Acos(math.Max(-1, math.Min(1, cosD)))
}

func radians(p Point) (lng, lat float64) {
	return p.Lng * math.Pi / 180, p.Lat * math.Pi / 180
}
