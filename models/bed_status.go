package models

// BedStatus is the realtime emergency-room bed availability for a hospital,
// cached separately from the facility record and overlaid at query time.
type BedStatus struct {
	HPID           string `json:"hpid"`
	Name           string `json:"name,omitempty"`
	AvailableBeds  int    `json:"available_beds"`
	OperatingRooms int    `json:"operating_rooms"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
