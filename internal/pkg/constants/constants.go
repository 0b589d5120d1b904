package constants

// NATS subjects
const (
	// SubjectAccidentsChanged carries payload-light change notifications for
	// the accidents table
	SubjectAccidentsChanged = "accidents.changed"
)

// Redis keys
const (
	// KeyFleetGeo is the geo set holding live ambulance positions
	KeyFleetGeo = "fleet:ambulances:geo"
	// KeyAmbulancePosition is the hash holding the last position sample
	// for one ambulance, keyed by ambulance id
	KeyAmbulancePosition = "fleet:ambulance:%s:position"
)

// Redis hash fields
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldGeohash   = "geohash"
	FieldTimestamp = "timestamp"
)
