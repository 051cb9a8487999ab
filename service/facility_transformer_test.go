package services

import (
	"testing"
	"time"

	"sos-server/api/nemc"
	"sos-server/models"
)

var transformTime = time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

func TestFacilityFromHospital(t *testing.T) {
	rt := nemc.BedItem{
		HPID:     "A1100001",
		DutyName: "Central Medical Center",
		DutyTel3: "02-1234-5678",
	}
	base := &nemc.HospitalItem{
		HPID:     "A1100001",
		DutyAddr: "12 Main St",
		DutyTel1: "02-0000-1111",
		WGS84Lat: "37.5665",
		WGS84Lon: "126.9780",
	}

	f, ok := FacilityFromHospital(rt, base, transformTime)
	if !ok {
		t.Fatal("expected facility to be built")
	}
	if f.Category != models.CATEGORY_EMERGENCY {
		t.Errorf("wrong category: %s", f.Category)
	}
	if f.FacilityID != "A1100001" || f.Name != "Central Medical Center" {
		t.Errorf("identity fields wrong: %+v", f)
	}
	if f.Address != "12 Main St" || f.Phone != "02-0000-1111" || f.EmergencyPhone != "02-1234-5678" {
		t.Errorf("contact fields wrong: %+v", f)
	}
	if f.Lat != 37.5665 || f.Lng != 126.9780 {
		t.Errorf("coordinates wrong: %f, %f", f.Lat, f.Lng)
	}
	if f.LastVerified != transformTime.Format(time.RFC3339) {
		t.Errorf("LastVerified wrong: %s", f.LastVerified)
	}
}

func TestFacilityFromHospital_MissingBase(t *testing.T) {
	rt := nemc.BedItem{HPID: "A1100009", DutyName: "Orphan Hospital"}
	if _, ok := FacilityFromHospital(rt, nil, transformTime); ok {
		t.Error("expected drop when the base list entry is missing")
	}
}

func TestFacilityFromHospital_BadCoordinates(t *testing.T) {
	rt := nemc.BedItem{HPID: "A1100001"}
	base := &nemc.HospitalItem{HPID: "A1100001", WGS84Lat: "not-a-number", WGS84Lon: "126.9780"}
	if _, ok := FacilityFromHospital(rt, base, transformTime); ok {
		t.Error("expected drop on unparseable coordinates")
	}
}

func TestBedStatusFromItem(t *testing.T) {
	bed := BedStatusFromItem(nemc.BedItem{
		HPID:     "A1100001",
		DutyName: "Central Medical Center",
		HVEC:     "8",
		HVOC:     "2",
		HVIDate:  "20260107113000",
	})
	if bed.AvailableBeds != 8 || bed.OperatingRooms != 2 {
		t.Errorf("counts wrong: %+v", bed)
	}
	if bed.UpdatedAt != "20260107113000" {
		t.Errorf("UpdatedAt wrong: %s", bed.UpdatedAt)
	}
}

func TestBedStatusFromItem_BlankCounts(t *testing.T) {
	bed := BedStatusFromItem(nemc.BedItem{HPID: "A1100002"})
	if bed.AvailableBeds != 0 || bed.OperatingRooms != 0 {
		t.Errorf("blank counts should default to zero: %+v", bed)
	}
}

func TestFacilityFromPharmacy(t *testing.T) {
	item := nemc.PharmacyItem{
		HPID:       "C1100001",
		DutyName:   "Good Health Pharmacy",
		DutyAddr:   "77 Elm St",
		DutyTel1:   "02-2222-3333",
		WGS84Lat:   "37.5700",
		WGS84Lon:   "126.9800",
		DutyTime1s: "0900",
		DutyTime1c: "1800",
		DutyTime3s: "0900",
		DutyTime3c: "2000",
		// Saturday has only an opening token, so the keyed map skips it.
		DutyTime6s: "0900",
	}

	f, ok := FacilityFromPharmacy(item, transformTime)
	if !ok {
		t.Fatal("expected facility to be built")
	}
	if f.Category != models.CATEGORY_PHARMACY {
		t.Errorf("wrong category: %s", f.Category)
	}
	if got := f.BusinessHours["mon"]; got != "0900-1800" {
		t.Errorf("mon hours wrong: %s", got)
	}
	if got := f.BusinessHours["wed"]; got != "0900-2000" {
		t.Errorf("wed hours wrong: %s", got)
	}
	if _, found := f.BusinessHours["sat"]; found {
		t.Error("incomplete saturday pair should be left out")
	}
	if f.DutyTime3s != "0900" || f.DutyTime3c != "2000" {
		t.Errorf("raw duty tokens should be carried: %+v", f)
	}
}

func TestFacilityFromPharmacy_NoHours(t *testing.T) {
	item := nemc.PharmacyItem{
		HPID:     "C1100009",
		DutyName: "Silent Pharmacy",
		WGS84Lat: "37.5700",
		WGS84Lon: "126.9800",
	}
	f, ok := FacilityFromPharmacy(item, transformTime)
	if !ok {
		t.Fatal("expected facility to be built")
	}
	if f.BusinessHours != nil {
		t.Errorf("hours map should be nil when no tokens are present: %v", f.BusinessHours)
	}
}

func TestFacilityFromAED_SerialFallback(t *testing.T) {
	item := nemc.AEDItem{
		BuildPlace:   "City Hall Lobby",
		BuildAddress: "1 Civic Plaza",
		WGS84Lat:     "37.5600",
		WGS84Lon:     "126.9700",
	}
	f, ok := FacilityFromAED(item, transformTime)
	if !ok {
		t.Fatal("expected facility to be built")
	}
	if f.FacilityID != "37.5600,126.9700" {
		t.Errorf("expected coordinate fallback id, got %s", f.FacilityID)
	}

	item.SerialSeq = "9001"
	f, _ = FacilityFromAED(item, transformTime)
	if f.FacilityID != "9001" {
		t.Errorf("expected serial id, got %s", f.FacilityID)
	}
}

func TestFacilityFromAnimalHospital_AddressFallback(t *testing.T) {
	item := nemc.AnimalHospitalItem{
		BizplcNm:   "Paws Animal Clinic",
		LocplcAddr: "Old Address 5",
		Telno:      "02-9999-8888",
		Lat:        "37.5500",
		Lon:        "126.9600",
	}
	f, ok := FacilityFromAnimalHospital(item, transformTime)
	if !ok {
		t.Fatal("expected facility to be built")
	}
	if f.Address != "Old Address 5" {
		t.Errorf("expected land-lot address fallback, got %s", f.Address)
	}

	item.RdnWhlAddr = "New Road 10"
	f, _ = FacilityFromAnimalHospital(item, transformTime)
	if f.Address != "New Road 10" {
		t.Errorf("expected road address to win, got %s", f.Address)
	}
}
