package geo

// Demo coordinates for warehouses and supplier origins. The dashboard map
// falls back to these when a document carries no geo tag of its own.

var warehouses = map[string]Point{
	"WH_LAX": {Lng: -118.255, Lat: 34.052}, // Los Angeles
	"WH_ORD": {Lng: -87.907, Lat: 41.974},  // Chicago O'Hare
	"WH_JFK": {Lng: -73.778, Lat: 40.641},  // New York
	"WH_FRA": {Lng: 8.570, Lat: 50.033},    // Frankfurt
	"WH_SHA": {Lng: 121.804, Lat: 31.144},  // Shanghai Pudong
}

var suppliers = map[string]Point{
	"SupA": {Lng: 114.058, Lat: 22.543},  // Shenzhen
	"SupB": {Lng: 121.565, Lat: 25.034},  // Taipei
	"SupC": {Lng: 126.978, Lat: 37.566},  // Seoul
	"SupD": {Lng: 72.877, Lat: 19.076},   // Mumbai
	"SupE": {Lng: 139.650, Lat: 35.676},  // Tokyo
	"SupF": {Lng: 13.405, Lat: 52.520},   // Berlin
	"SupG": {Lng: -99.134, Lat: 19.433},  // Mexico City
	"SupH": {Lng: -46.633, Lat: -23.550}, // São Paulo
	"SupI": {Lng: 2.352, Lat: 48.856},    // Paris
	"SupJ": {Lng: -0.1278, Lat: 51.507},  // London
}

// WarehouseCoords resolves a warehouse code to coordinates. Unknown codes
// fall back to the Los Angeles hub.
func WarehouseCoords(code string) Point {
	if p, ok := warehouses[code]; ok {
		return p
	}
	return warehouses["WH_LAX"]
}

// SupplierCoords resolves a supplier id to its origin coordinates.
func SupplierCoords(supplierID string) (Point, bool) {
	p, ok := suppliers[supplierID]
	return p, ok
}
