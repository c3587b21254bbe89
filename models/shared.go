package models

// GeoLocation is a latitude/longitude pair as stored on user and provider
// profiles.
type GeoLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// LatLng is the coordinate shape used by checkout payloads and user-side
// order units.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// LatLon is the coordinate shape used by provider-side and admin-side order
// units. The lon key differs from LatLng for compatibility with stored data.
type LatLon struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}
