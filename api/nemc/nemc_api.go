package nemc

// NemcAPI defines the interface for the public emergency-information feeds.
// City/district narrow the query region; empty strings fetch nationwide.
type NemcAPI interface {
	FetchHospitalList(city, district string) ([]HospitalItem, error)
	FetchRealtimeBeds(city, district string) ([]BedItem, error)
	FetchPharmacyList(city, district string) ([]PharmacyItem, error)
	FetchAEDList(city, district string) ([]AEDItem, error)
	FetchAnimalHospitalList() ([]AnimalHospitalItem, error)
	SetServiceKey(serviceKey string)
}
