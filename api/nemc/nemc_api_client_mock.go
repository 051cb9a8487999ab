package nemc

import (
	"log"

	"sos-server/config"
	"sos-server/util"
)

// NemcApiClientMock serves feed rows from JSON fixtures, for wiring the
// service without portal credentials.
type NemcApiClientMock struct {
}

// NewNemcApiClientMock creates a new instance of NemcApiClientMock.
func NewNemcApiClientMock() *NemcApiClientMock {
	return &NemcApiClientMock{}
}

func (c *NemcApiClientMock) FetchHospitalList(city, district string) ([]HospitalItem, error) {
	return readFixture[HospitalItem](config.GetResourcePath(config.HOSPITALS_RESOURCE))
}

func (c *NemcApiClientMock) FetchRealtimeBeds(city, district string) ([]BedItem, error) {
	return readFixture[BedItem](config.GetResourcePath(config.REALTIME_BEDS_RESOURCE))
}

func (c *NemcApiClientMock) FetchPharmacyList(city, district string) ([]PharmacyItem, error) {
	return readFixture[PharmacyItem](config.GetResourcePath(config.PHARMACIES_RESOURCE))
}

func (c *NemcApiClientMock) FetchAEDList(city, district string) ([]AEDItem, error) {
	return readFixture[AEDItem](config.GetResourcePath(config.AEDS_RESOURCE))
}

func (c *NemcApiClientMock) FetchAnimalHospitalList() ([]AnimalHospitalItem, error) {
	return readFixture[AnimalHospitalItem](config.GetResourcePath(config.ANIMAL_HOSPITALS_RESOURCE))
}

// SetServiceKey is a no-op; the mock needs no credentials.
func (c *NemcApiClientMock) SetServiceKey(serviceKey string) {
}

func readFixture[T any](path string) ([]T, error) {
	items, err := util.ReadFeedItemsFromJSON[T](path)
	if err != nil {
		log.Printf("[NemcApiClientMock] Could not read fixture %s: %v", path, err)
		return nil, err
	}
	return items, nil
}
