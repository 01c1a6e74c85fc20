package providers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/ausclimate/ausweather-service/internal/weather"
)

// DefaultBoMBaseURL is the production Bureau of Meteorology host.
const DefaultBoMBaseURL = "http://www.bom.gov.au"

// BoMClient fetches station lists, directory listings, and zipped data
// files from the Bureau of Meteorology climate data service.
type BoMClient struct {
	baseURL string
	client  *http.Client
}

// NewBoMClient creates a BoM client. An empty baseURL selects the
// production host; tests point it at a local server.
func NewBoMClient(client *http.Client, baseURL string) *BoMClient {
	if baseURL == "" {
		baseURL = DefaultBoMBaseURL
	}
	return &BoMClient{
		baseURL: baseURL,
		client:  client,
	}
}

// StationList fetches the fixed-width list of all Australian stations
// reporting the variable's observation code.
func (c *BoMClient) StationList(ctx context.Context, v weather.Variable) ([]weather.Station, error) {
	u := weather.StationListURL(c.baseURL, v.Code)
	log.Printf("fetching BoM station list for obs code %d", v.Code)

	body, err := getBody(ctx, c.client, u)
	if err != nil {
		return nil, err
	}
	return parseStationList(body, v)
}

// LookupC queries the station directory ajax listing around station and
// extracts the signed p_c token from the data-file link in the matching
// row. The token is opaque; it is returned exactly as published.
func (c *BoMClient) LookupC(ctx context.Context, v weather.Variable, station, radiusKm int) (int, error) {
	u, err := weather.StationDirectoryURL(c.baseURL, v.Code, station, radiusKm)
	if err != nil {
		return 0, err
	}

	body, err := getBody(ctx, c.client, u)
	if err != nil {
		return 0, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("parsing station directory listing: %w", err)
	}

	want := fmt.Sprintf("%06d", station)

	found := false
	cParam := 0
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		q := ref.Query()
		if q.Get("p_stn_num") != want || q.Get("p_c") == "" {
			return true
		}
		n, err := strconv.Atoi(q.Get("p_c"))
		if err != nil {
			return true
		}
		cParam = n
		found = true
		return false
	})

	if !found {
		return 0, fmt.Errorf("%w: station %06d, obs code %d", ErrStationNotListed, station, v.Code)
	}
	return cParam, nil
}

// DataFile fetches the zipped data file for a station and decodes the CSV
// member into normalized observations. c must come from a directory lookup.
func (c *BoMClient) DataFile(ctx context.Context, v weather.Variable, station, cParam int) ([]weather.Observation, error) {
	u, err := weather.DataFileURL(c.baseURL, v.Code, v.Interval, station, cParam)
	if err != nil {
		return nil, err
	}
	log.Printf("fetching BoM data file for station %06d obs code %d", station, v.Code)

	body, err := getBody(ctx, c.client, u)
	if err != nil {
		return nil, err
	}
	return decodeDataArchive(body, v)
}
