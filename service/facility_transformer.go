package services

import (
	"strconv"
	"time"

	"sos-server/api/nemc"
	"sos-server/models"
)

// parseCoord converts a feed coordinate string; rows with empty or broken
// coordinates are dropped by the callers.
func parseCoord(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FacilityFromHospital builds an EMERGENCY facility by joining a realtime
// bed row with its base-list entry (which carries the address and
// coordinates). base may be nil when the list feed is missing the hospital.
func FacilityFromHospital(rt nemc.BedItem, base *nemc.HospitalItem, now time.Time) (models.Facility, bool) {
	f := models.Facility{
		FacilityID:     rt.HPID,
		Category:       models.CATEGORY_EMERGENCY,
		Name:           rt.DutyName,
		EmergencyPhone: rt.DutyTel3,
		LastVerified:   now.Format(time.RFC3339),
	}
	if base == nil {
		return f, false
	}

	f.Address = base.DutyAddr
	f.Phone = base.DutyTel1

	lat, okLat := parseCoord(base.WGS84Lat)
	lng, okLng := parseCoord(base.WGS84Lon)
	if !okLat || !okLng {
		return f, false
	}
	f.Lat, f.Lng = lat, lng
	return f, true
}

// BedStatusFromItem extracts the realtime bed availability from a feed row.
// Bed counts default to zero when the feed sends blanks.
func BedStatusFromItem(rt nemc.BedItem) models.BedStatus {
	beds, _ := strconv.Atoi(rt.HVEC)
	rooms, _ := strconv.Atoi(rt.HVOC)
	return models.BedStatus{
		HPID:           rt.HPID,
		Name:           rt.DutyName,
		AvailableBeds:  beds,
		OperatingRooms: rooms,
		UpdatedAt:      rt.HVIDate,
	}
}

// FacilityFromPharmacy builds a PHARMACY facility, folding the per-day duty
// tokens into the keyed-by-day hours map. Days with an incomplete token
// pair are left out of the map, meaning closed.
func FacilityFromPharmacy(item nemc.PharmacyItem, now time.Time) (models.Facility, bool) {
	lat, okLat := parseCoord(item.WGS84Lat)
	lng, okLng := parseCoord(item.WGS84Lon)
	if !okLat || !okLng {
		return models.Facility{}, false
	}

	hours := map[string]string{}
	addDay := func(key, open, close string) {
		if open != "" && close != "" {
			hours[key] = open + "-" + close
		}
	}
	addDay("mon", item.DutyTime1s, item.DutyTime1c)
	addDay("tue", item.DutyTime2s, item.DutyTime2c)
	addDay("wed", item.DutyTime3s, item.DutyTime3c)
	addDay("thu", item.DutyTime4s, item.DutyTime4c)
	addDay("fri", item.DutyTime5s, item.DutyTime5c)
	addDay("sat", item.DutyTime6s, item.DutyTime6c)
	addDay("sun", item.DutyTime7s, item.DutyTime7c)
	addDay("hol", item.DutyTime8s, item.DutyTime8c)
	if len(hours) == 0 {
		hours = nil
	}

	return models.Facility{
		FacilityID:    item.HPID,
		Category:      models.CATEGORY_PHARMACY,
		Name:          item.DutyName,
		Address:       item.DutyAddr,
		Phone:         item.DutyTel1,
		Lat:           lat,
		Lng:           lng,
		BusinessHours: hours,
		// The "0000" Monday-open marker some rows carry doubles as the
		// always-open flag in the status engine.
		DutyTime1s:   item.DutyTime1s,
		DutyTime1c:   item.DutyTime1c,
		DutyTime2s:   item.DutyTime2s,
		DutyTime2c:   item.DutyTime2c,
		DutyTime3s:   item.DutyTime3s,
		DutyTime3c:   item.DutyTime3c,
		DutyTime4s:   item.DutyTime4s,
		DutyTime4c:   item.DutyTime4c,
		DutyTime5s:   item.DutyTime5s,
		DutyTime5c:   item.DutyTime5c,
		DutyTime6s:   item.DutyTime6s,
		DutyTime6c:   item.DutyTime6c,
		DutyTime7s:   item.DutyTime7s,
		DutyTime7c:   item.DutyTime7c,
		DutyTime8s:   item.DutyTime8s,
		DutyTime8c:   item.DutyTime8c,
		LastVerified: now.Format(time.RFC3339),
	}, true
}

// FacilityFromAED builds an AED facility. Identity falls back to the raw
// coordinate strings when the feed omits the serial number.
func FacilityFromAED(item nemc.AEDItem, now time.Time) (models.Facility, bool) {
	lat, okLat := parseCoord(item.WGS84Lat)
	lng, okLng := parseCoord(item.WGS84Lon)
	if !okLat || !okLng {
		return models.Facility{}, false
	}

	id := item.SerialSeq
	if id == "" {
		id = item.WGS84Lat + "," + item.WGS84Lon
	}

	return models.Facility{
		FacilityID:   id,
		Category:     models.CATEGORY_AED,
		Name:         item.BuildPlace,
		Address:      item.BuildAddress,
		Model:        item.Model,
		ManagerPhone: item.ManagerTel,
		Lat:          lat,
		Lng:          lng,
		LastVerified: now.Format(time.RFC3339),
	}, true
}

// FacilityFromAnimalHospital builds an ANIMAL_HOSPITAL facility. The feed
// has no schedule fields, so the status engine reports these unknown until
// hours arrive from another source.
func FacilityFromAnimalHospital(item nemc.AnimalHospitalItem, now time.Time) (models.Facility, bool) {
	lat, okLat := parseCoord(item.Lat)
	lng, okLng := parseCoord(item.Lon)
	if !okLat || !okLng {
		return models.Facility{}, false
	}

	address := item.RdnWhlAddr
	if address == "" {
		address = item.LocplcAddr
	}

	return models.Facility{
		FacilityID:   item.Lat + "," + item.Lon,
		Category:     models.CATEGORY_ANIMAL_HOSPITAL,
		Name:         item.BizplcNm,
		Address:      address,
		Phone:        item.Telno,
		Lat:          lat,
		Lng:          lng,
		LastVerified: now.Format(time.RFC3339),
	}, true
}
