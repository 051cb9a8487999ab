package nemc

import "encoding/xml"

// FeedResponse is the XML envelope shared by the public-data feeds.
// Coordinates and counts arrive as strings; rows with empty or broken
// numbers are dropped during transformation, not here.
type FeedResponse[T any] struct {
	XMLName xml.Name   `xml:"response"`
	Header  FeedHeader `xml:"header"`
	Body    struct {
		Items struct {
			Item []T `xml:"item"`
		} `xml:"items"`
		NumOfRows  int `xml:"numOfRows"`
		PageNo     int `xml:"pageNo"`
		TotalCount int `xml:"totalCount"`
	} `xml:"body"`
}

type FeedHeader struct {
	ResultCode string `xml:"resultCode"`
	ResultMsg  string `xml:"resultMsg"`
}

// HospitalItem is one row of the emergency medical institution list feed.
type HospitalItem struct {
	HPID     string `xml:"hpid" json:"hpid"`
	DutyName string `xml:"dutyName" json:"dutyName"`
	DutyAddr string `xml:"dutyAddr" json:"dutyAddr"`
	DutyTel1 string `xml:"dutyTel1" json:"dutyTel1"`
	DutyTel3 string `xml:"dutyTel3" json:"dutyTel3"`
	WGS84Lat string `xml:"wgs84Lat" json:"wgs84Lat"`
	WGS84Lon string `xml:"wgs84Lon" json:"wgs84Lon"`
}

// BedItem is one row of the realtime emergency-room bed feed.
type BedItem struct {
	HPID     string `xml:"hpid" json:"hpid"`
	DutyName string `xml:"dutyName" json:"dutyName"`
	DutyTel3 string `xml:"dutyTel3" json:"dutyTel3"`
	HVEC     string `xml:"hvec" json:"hvec"`       // available ER beds
	HVOC     string `xml:"hvoc" json:"hvoc"`       // available operating rooms
	HV1      string `xml:"hv1" json:"hv1"`         // free-form status message
	HVIDate  string `xml:"hvidate" json:"hvidate"` // last update timestamp
}

// PharmacyItem is one row of the pharmacy list feed, including the raw
// per-day duty-time tokens (1=Monday .. 7=Sunday, 8=holiday).
type PharmacyItem struct {
	HPID     string `xml:"hpid" json:"hpid"`
	DutyName string `xml:"dutyName" json:"dutyName"`
	DutyAddr string `xml:"dutyAddr" json:"dutyAddr"`
	DutyTel1 string `xml:"dutyTel1" json:"dutyTel1"`
	WGS84Lat string `xml:"wgs84Lat" json:"wgs84Lat"`
	WGS84Lon string `xml:"wgs84Lon" json:"wgs84Lon"`

	DutyTime1s string `xml:"dutyTime1s" json:"dutyTime1s"`
	DutyTime1c string `xml:"dutyTime1c" json:"dutyTime1c"`
	DutyTime2s string `xml:"dutyTime2s" json:"dutyTime2s"`
	DutyTime2c string `xml:"dutyTime2c" json:"dutyTime2c"`
	DutyTime3s string `xml:"dutyTime3s" json:"dutyTime3s"`
	DutyTime3c string `xml:"dutyTime3c" json:"dutyTime3c"`
	DutyTime4s string `xml:"dutyTime4s" json:"dutyTime4s"`
	DutyTime4c string `xml:"dutyTime4c" json:"dutyTime4c"`
	DutyTime5s string `xml:"dutyTime5s" json:"dutyTime5s"`
	DutyTime5c string `xml:"dutyTime5c" json:"dutyTime5c"`
	DutyTime6s string `xml:"dutyTime6s" json:"dutyTime6s"`
	DutyTime6c string `xml:"dutyTime6c" json:"dutyTime6c"`
	DutyTime7s string `xml:"dutyTime7s" json:"dutyTime7s"`
	DutyTime7c string `xml:"dutyTime7c" json:"dutyTime7c"`
	DutyTime8s string `xml:"dutyTime8s" json:"dutyTime8s"`
	DutyTime8c string `xml:"dutyTime8c" json:"dutyTime8c"`
}

// AEDItem is one row of the AED location feed.
type AEDItem struct {
	SerialSeq    string `xml:"serialSeq" json:"serialSeq"`
	BuildPlace   string `xml:"buildPlace" json:"buildPlace"`
	BuildAddress string `xml:"buildAddress" json:"buildAddress"`
	Model        string `xml:"model" json:"model"`
	ManagerTel   string `xml:"managerTel" json:"managerTel"`
	WGS84Lat     string `xml:"wgs84Lat" json:"wgs84Lat"`
	WGS84Lon     string `xml:"wgs84Lon" json:"wgs84Lon"`
}

// AnimalHospitalItem is one row of the animal hospital feed. Field names
// differ from the emergency feeds; address and coordinates have fallbacks.
type AnimalHospitalItem struct {
	BizplcNm   string `xml:"bizplcNm" json:"bizplcNm"`
	RdnWhlAddr string `xml:"rdnWhlAddr" json:"rdnWhlAddr"`
	LocplcAddr string `xml:"locplcAddr" json:"locplcAddr"`
	Telno      string `xml:"telno" json:"telno"`
	Lat        string `xml:"lat" json:"lat"`
	Lon        string `xml:"lon" json:"lon"`
}
