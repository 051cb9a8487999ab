package models

import "fmt"

// Facility categories as stored in the geo index.
const (
	CATEGORY_EMERGENCY       = "EMERGENCY"
	CATEGORY_PHARMACY        = "PHARMACY"
	CATEGORY_ANIMAL_HOSPITAL = "ANIMAL_HOSPITAL"
	CATEGORY_AED             = "AED"
)

// Facility represents a hospital, pharmacy, animal hospital or AED entry
// normalized from the public-data feeds.
type Facility struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=EMERGENCY PHARMACY ANIMAL_HOSPITAL AED"`

	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	// EmergencyPhone is the direct emergency-room line (hospitals only).
	EmergencyPhone string `json:"emergency_phone,omitempty"`

	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`

	Is24H bool `json:"is_24h"`

	// BusinessHours maps day keys ("sun".."sat", plus "hol") to an
	// "HHMM-HHMM" range. A missing key means closed that day. When nil,
	// the raw per-day duty tokens below are the schedule source.
	BusinessHours map[string]string `json:"business_hours,omitempty"`

	// Raw duty-time tokens in compact "HHMM"/"HMM" form, indexed
	// 1(Monday)..7(Sunday) with 8 for holidays, as delivered by the feeds.
	DutyTime1s string `json:"dutyTime1s,omitempty"`
	DutyTime1c string `json:"dutyTime1c,omitempty"`
	DutyTime2s string `json:"dutyTime2s,omitempty"`
	DutyTime2c string `json:"dutyTime2c,omitempty"`
	DutyTime3s string `json:"dutyTime3s,omitempty"`
	DutyTime3c string `json:"dutyTime3c,omitempty"`
	DutyTime4s string `json:"dutyTime4s,omitempty"`
	DutyTime4c string `json:"dutyTime4c,omitempty"`
	DutyTime5s string `json:"dutyTime5s,omitempty"`
	DutyTime5c string `json:"dutyTime5c,omitempty"`
	DutyTime6s string `json:"dutyTime6s,omitempty"`
	DutyTime6c string `json:"dutyTime6c,omitempty"`
	DutyTime7s string `json:"dutyTime7s,omitempty"`
	DutyTime7c string `json:"dutyTime7c,omitempty"`
	DutyTime8s string `json:"dutyTime8s,omitempty"`
	DutyTime8c string `json:"dutyTime8c,omitempty"`

	// AED-only details.
	Model        string `json:"model,omitempty"`
	ManagerPhone string `json:"manager_phone,omitempty"`

	LastVerified string `json:"last_verified,omitempty"`
}

// DutyTimes returns the raw open/close token pair for a 1-based day index
// (1=Monday .. 7=Sunday, 8=holiday). Out-of-range indexes yield empty tokens.
func (f *Facility) DutyTimes(dayIndex int) (open string, close string) {
	switch dayIndex {
	case 1:
		return f.DutyTime1s, f.DutyTime1c
	case 2:
		return f.DutyTime2s, f.DutyTime2c
	case 3:
		return f.DutyTime3s, f.DutyTime3c
	case 4:
		return f.DutyTime4s, f.DutyTime4c
	case 5:
		return f.DutyTime5s, f.DutyTime5c
	case 6:
		return f.DutyTime6s, f.DutyTime6c
	case 7:
		return f.DutyTime7s, f.DutyTime7c
	case 8:
		return f.DutyTime8s, f.DutyTime8c
	}
	return "", ""
}

// Coordinates satisfies util.Located for distance ranking.
func (f Facility) Coordinates() (lat float64, lng float64) {
	return f.Lat, f.Lng
}

func (f *Facility) ToString() string {
	return fmt.Sprintf("Facility(id=%s, category=%s, name=%s, lat=%f, lng=%f)",
		f.FacilityID, f.Category, f.Name, f.Lat, f.Lng)
}
