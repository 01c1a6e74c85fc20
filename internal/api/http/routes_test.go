package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/ausclimate/ausweather-service/internal/weather"
	"github.com/ausclimate/ausweather-service/internal/weather/providers"
)

func newTestApp(service *weather.Service) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, service)
	return app
}

// TestQueryValidation verifies that missing or malformed query parameters
// are rejected before any upstream call is made.
func TestQueryValidation(t *testing.T) {
	svc := weather.NewService(nil, nil, "", 0)
	app := newTestApp(svc)

	cases := []string{
		"/api/v1/bom/stations",                                // variable missing
		"/api/v1/bom/data?station=23000",                      // variable missing
		"/api/v1/bom/data?variable=daily_rain",                // station missing
		"/api/v1/bom/data?variable=daily_rain&station=xyz",    // station malformed
		"/api/v1/silo/daily",                                  // station missing
		"/api/v1/silo/daily?station=23343&start=01-01-1990",   // bad date format
		"/api/v1/silo/annual-rainfall?station=9999999",        // station out of range
		"/api/v1/bom/stations/near?variable=daily_rain",       // city missing
	}
	for _, path := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", path, resp.StatusCode, http.StatusBadRequest)
		}
	}
}

func TestVariablesEndpoints(t *testing.T) {
	svc := weather.NewService(nil, nil, "", 0)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/variables", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var listing struct {
		Variables []weather.Variable `json:"variables"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(listing.Variables) == 0 {
		t.Fatal("expected a non-empty variable registry")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/variables/monthly_rain", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var v weather.Variable
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if v.Code != 139 {
		t.Errorf("code = %d, want 139", v.Code)
	}

	// Unknown alias is a 404, never a silent default.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/variables/hourly_rain", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

const sampleAllData = `"Patched Point data for station: 23343 WAITE INSTITUTE           Lat: -34.97 Long: 138.63"
Date     Day Date2      T.Max Smx T.Min Smn Rain Srn  Evap Sev  Radn Ssl  VP Svp RHmaxT RHminT FAO56 MSLPres Sp
 (yyyymmdd)  (ddmmyyyy)  (oC)      (oC)      (mm)     (mm)      (MJ/m2)   (hPa)
19950101   1 01011995   30.0   0  15.5   0   2.0   0   7.8  0   25.0  0  10.2  0   45.0   80.0   5.5  1013.2  0
19950102   2 02011995   28.0   0  14.0   0   5.6  15   6.0  0   20.0  0  11.0  0   50.0   85.0   5.0  1010.0  0
`

func TestAnnualRainfallEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleAllData))
	}))
	defer upstream.Close()

	silo := providers.NewSILOClient(upstream.Client(), upstream.URL, "someone@example.com")
	svc := weather.NewService(nil, silo, "", 0)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/silo/annual-rainfall?station=23343", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var report weather.StationReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if report.StationName != "WAITE INSTITUTE" {
		t.Errorf("station name = %q, want WAITE INSTITUTE", report.StationName)
	}
	if len(report.Annual) != 1 || report.Annual[0].Year != 1995 {
		t.Fatalf("annual = %+v, want single 1995 entry", report.Annual)
	}
	if report.Annual[0].Rainfall != 7.6 {
		t.Errorf("1995 rainfall = %v, want 7.6", report.Annual[0].Rainfall)
	}
	if report.MeanAnnualRainfall != 7.6 {
		t.Errorf("mean = %v, want 7.6", report.MeanAnnualRainfall)
	}
	if len(report.Records) != 0 {
		t.Errorf("records included without include_records flag")
	}
}

// TestSILOUnavailableWithoutEmail confirms the SILO endpoints surface a 503
// when no email address is configured, rather than calling upstream.
func TestSILOUnavailableWithoutEmail(t *testing.T) {
	silo := providers.NewSILOClient(http.DefaultClient, "http://localhost:1", "")
	svc := weather.NewService(nil, silo, "", 0)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/silo/daily?station=23343", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

// TestGeocoderDisabled confirms proximity search reports the feature as
// unavailable when no geocoder key is configured.
func TestGeocoderDisabled(t *testing.T) {
	svc := weather.NewService(nil, nil, "", 0)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bom/stations/near?variable=daily_rain&city=Adelaide&radius_km=50", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
