package nemc

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"sos-server/api"
)

const pharmacyFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header>
    <resultCode>00</resultCode>
    <resultMsg>NORMAL SERVICE.</resultMsg>
  </header>
  <body>
    <items>
      <item>
        <hpid>C1100001</hpid>
        <dutyName>Central Pharmacy</dutyName>
        <dutyAddr>1 Main Street</dutyAddr>
        <dutyTel1>02-123-4567</dutyTel1>
        <wgs84Lat>37.5665</wgs84Lat>
        <wgs84Lon>126.9780</wgs84Lon>
        <dutyTime1s>0900</dutyTime1s>
        <dutyTime1c>1800</dutyTime1c>
        <dutyTime7s>1000</dutyTime7s>
        <dutyTime7c>1400</dutyTime7c>
      </item>
      <item>
        <hpid>C1100002</hpid>
        <dutyName>Station Pharmacy</dutyName>
        <wgs84Lat>37.5700</wgs84Lat>
        <wgs84Lon>126.9850</wgs84Lon>
      </item>
    </items>
    <numOfRows>3000</numOfRows>
    <pageNo>1</pageNo>
    <totalCount>2</totalCount>
  </body>
</response>`

func TestFetchPharmacyList(t *testing.T) {
	var receivedQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != PHARMACY_LIST_ENDPOINT {
			t.Errorf("expected path %s; got %s", PHARMACY_LIST_ENDPOINT, r.URL.Path)
		}
		receivedQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(pharmacyFeedXML))
	}))
	defer srv.Close()

	client := NewNemcApiClient(api.NewHTTPClient(srv.URL))
	client.SetServiceKey("secret-key")

	items, err := client.FetchPharmacyList("Seoul", "Jongno-gu")
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 pharmacies, got %d", len(items))
	}
	first := items[0]
	if first.HPID != "C1100001" {
		t.Errorf("hpid = %q; want C1100001", first.HPID)
	}
	if first.DutyTime1s != "0900" || first.DutyTime1c != "1800" {
		t.Errorf("Monday duty tokens = %q-%q; want 0900-1800", first.DutyTime1s, first.DutyTime1c)
	}
	if first.WGS84Lat != "37.5665" {
		t.Errorf("wgs84Lat = %q; want 37.5665", first.WGS84Lat)
	}

	checks := []struct {
		key  string
		want string
	}{
		{"serviceKey", "secret-key"},
		{"Q0", "Seoul"},
		{"Q1", "Jongno-gu"},
		{"numOfRows", "3000"},
		{"pageNo", "1"},
	}
	for _, c := range checks {
		if got := receivedQuery.Get(c.key); got != c.want {
			t.Errorf("query[%q] = %q; want %q", c.key, got, c.want)
		}
	}
}

func TestFetchRealtimeBeds_UsesStageParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("STAGE1") != "Seoul" || q.Get("STAGE2") != "Jongno-gu" {
			t.Errorf("expected STAGE1/STAGE2 region params, got %v", q)
		}
		w.Write([]byte(`<response><header><resultCode>00</resultCode></header><body><items>
			<item><hpid>A1100001</hpid><dutyName>City ER</dutyName><hvec>12</hvec></item>
		</items></body></response>`))
	}))
	defer srv.Close()

	client := NewNemcApiClient(api.NewHTTPClient(srv.URL))
	client.SetServiceKey("k")

	beds, err := client.FetchRealtimeBeds("Seoul", "Jongno-gu")
	if err != nil {
		t.Fatal(err)
	}
	if len(beds) != 1 || beds[0].HVEC != "12" {
		t.Errorf("unexpected beds: %+v", beds)
	}
}

func TestFetchHospitalList_FeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><header><resultCode>22</resultCode><resultMsg>LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS ERROR.</resultMsg></header><body></body></response>`))
	}))
	defer srv.Close()

	client := NewNemcApiClient(api.NewHTTPClient(srv.URL))
	client.SetServiceKey("k")

	if _, err := client.FetchHospitalList("", ""); err == nil {
		t.Fatal("expected a feed error, got nil")
	}
}

func TestFetchAnimalHospitalList_EmptyItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("numOfRows") != "1000" {
			t.Errorf("expected numOfRows=1000, got %s", r.URL.Query().Get("numOfRows"))
		}
		w.Write([]byte(`<response><header><resultCode>00</resultCode></header><body><items></items></body></response>`))
	}))
	defer srv.Close()

	client := NewNemcApiClient(api.NewHTTPClient(srv.URL))
	client.SetServiceKey("k")

	items, err := client.FetchAnimalHospitalList()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
