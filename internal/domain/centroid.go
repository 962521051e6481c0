package domain

// Geo is a WGS-84 latitude/longitude pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type islandCentroid struct {
	island string
	geo    Geo
}

// centroids is ordered west to east, the order KnownIslands reports.
var centroids = []islandCentroid{
	{"Sumatera", Geo{Lat: -0.5, Lon: 102}},
	{"Jawa", Geo{Lat: -7.0, Lon: 111}},
	{"Bali", Geo{Lat: -8.34, Lon: 115.09}},
	{"Nusa Tenggara", Geo{Lat: -8.6, Lon: 119}},
	{"Kalimantan", Geo{Lat: 0.5, Lon: 114}},
	{"Sulawesi", Geo{Lat: -1.5, Lon: 121.5}},
	{"Maluku", Geo{Lat: -3.0, Lon: 129}},
	{"Papua", Geo{Lat: -4.0, Lon: 138.5}},
}

var centroidIndex = func() map[string]Geo {
	m := make(map[string]Geo, len(centroids))
	for _, c := range centroids {
		m[c.island] = c.geo
	}
	return m
}()

// LookupCentroid returns the fixed marker position for an island. The match
// is exact; an unknown name reports false.
func LookupCentroid(island string) (Geo, bool) {
	g, ok := centroidIndex[island]
	return g, ok
}

// KnownIslands lists the islands that have a centroid.
func KnownIslands() []string {
	names := make([]string, len(centroids))
	for i, c := range centroids {
		names[i] = c.island
	}
	return names
}

// IndonesiaCenter and IndonesiaZoom frame the whole archipelago. The map
// always opens here regardless of the current selection.
var IndonesiaCenter = Geo{Lat: -2.5, Lon: 117}

const IndonesiaZoom = 5
