package nemc

import (
	"fmt"
	"net/url"
	"strconv"

	"sos-server/api"
)

const HOSPITAL_LIST_ENDPOINT = "/B552657/ErmctInfoInqireService/getEgytListInfoInqire"
const REALTIME_BEDS_ENDPOINT = "/B552657/ErmctInfoInqireService/getEmrrmRltmUsefulSckbdInfoInqire"
const PHARMACY_LIST_ENDPOINT = "/B552657/ErmctInsttInfoInqireService/getParmacyListInfoInqire"
const AED_LIST_ENDPOINT = "/B552657/AEDInfoInqireService/getAedLcinfoInqire"
const ANIMAL_HOSPITAL_ENDPOINT = "/1543061/animalHosptlInfoService/animalHosptlInfo"

const DEFAULT_NUM_OF_ROWS = 3000
const ANIMAL_NUM_OF_ROWS = 1000

// NemcApiClient embeds the common HTTPClient and speaks the public-data
// portal's XML dialect.
type NemcApiClient struct {
	*api.HTTPClient
	serviceKey string
}

// NewNemcApiClient creates a new instance of NemcApiClient.
func NewNemcApiClient(httpClient *api.HTTPClient) *NemcApiClient {
	return &NemcApiClient{
		HTTPClient: httpClient,
	}
}

// SetServiceKey sets the portal service key sent with every request.
func (c *NemcApiClient) SetServiceKey(serviceKey string) {
	c.serviceKey = serviceKey
}

// FetchHospitalList retrieves the emergency medical institution list, with
// location info, for the given region.
func (c *NemcApiClient) FetchHospitalList(city, district string) ([]HospitalItem, error) {
	params := c.regionParams("Q0", "Q1", city, district, DEFAULT_NUM_OF_ROWS)
	return fetchItems[HospitalItem](c, HOSPITAL_LIST_ENDPOINT, params)
}

// FetchRealtimeBeds retrieves the realtime emergency-room bed availability
// for the given region. This feed uses STAGE1/STAGE2 region parameters.
func (c *NemcApiClient) FetchRealtimeBeds(city, district string) ([]BedItem, error) {
	params := c.regionParams("STAGE1", "STAGE2", city, district, DEFAULT_NUM_OF_ROWS)
	return fetchItems[BedItem](c, REALTIME_BEDS_ENDPOINT, params)
}

// FetchPharmacyList retrieves the pharmacy list for the given region.
func (c *NemcApiClient) FetchPharmacyList(city, district string) ([]PharmacyItem, error) {
	params := c.regionParams("Q0", "Q1", city, district, DEFAULT_NUM_OF_ROWS)
	return fetchItems[PharmacyItem](c, PHARMACY_LIST_ENDPOINT, params)
}

// FetchAEDList retrieves the AED location list for the given region.
func (c *NemcApiClient) FetchAEDList(city, district string) ([]AEDItem, error) {
	params := c.regionParams("Q0", "Q1", city, district, DEFAULT_NUM_OF_ROWS)
	return fetchItems[AEDItem](c, AED_LIST_ENDPOINT, params)
}

// FetchAnimalHospitalList retrieves the animal hospital list. This feed has
// no region parameters.
func (c *NemcApiClient) FetchAnimalHospitalList() ([]AnimalHospitalItem, error) {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("numOfRows", strconv.Itoa(ANIMAL_NUM_OF_ROWS))
	params.Set("pageNo", "1")
	return fetchItems[AnimalHospitalItem](c, ANIMAL_HOSPITAL_ENDPOINT, params)
}

func (c *NemcApiClient) regionParams(cityKey, districtKey, city, district string, numOfRows int) url.Values {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	if city != "" {
		params.Set(cityKey, city)
	}
	if district != "" {
		params.Set(districtKey, district)
	}
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	params.Set("pageNo", "1")
	return params
}

func fetchItems[T any](c *NemcApiClient, endpoint string, params url.Values) ([]T, error) {
	var response FeedResponse[T]
	err := c.RequestXML("GET", endpoint+"?"+params.Encode(), nil, &response)
	if err != nil {
		return nil, err
	}

	if response.Header.ResultCode != "" && response.Header.ResultCode != "00" {
		return nil, fmt.Errorf("feed error %s: %s", response.Header.ResultCode, response.Header.ResultMsg)
	}

	return response.Body.Items.Item, nil
}
