package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/kelvins/geocoder"
)

var (
	// ErrGeocoderDisabled is returned by proximity searches when no geocoder
	// API key is configured.
	ErrGeocoderDisabled = errors.New("geocoder API key not configured")
)

// Service orchestrates the BoM and SILO providers behind the HTTP API.
type Service struct {
	bom  BoMProvider
	silo SILOProvider

	geocoderEnabled bool
	lookupRadiusKm  int
}

// NewService creates a new Service. geocoderKey may be empty, which disables
// proximity searches. lookupRadiusKm bounds the station directory search
// used to resolve the p_c token when a caller does not supply one.
func NewService(bom BoMProvider, silo SILOProvider, geocoderKey string, lookupRadiusKm int) *Service {
	if geocoderKey != "" {
		geocoder.ApiKey = geocoderKey
	}
	if lookupRadiusKm <= 0 {
		lookupRadiusKm = 50
	}
	return &Service{
		bom:             bom,
		silo:            silo,
		geocoderEnabled: geocoderKey != "",
		lookupRadiusKm:  lookupRadiusKm,
	}
}

// Variables returns the observation-code registry.
func (s *Service) Variables() []Variable {
	return Variables()
}

// Resolve maps an alias or numeric obs code to its variable.
func (s *Service) Resolve(alias string) (Variable, error) {
	return ResolveVariable(alias)
}

// Stations returns the BoM station list for the variable named by alias.
func (s *Service) Stations(ctx context.Context, alias string) ([]Station, error) {
	v, err := ResolveVariable(alias)
	if err != nil {
		return nil, err
	}
	return s.bom.StationList(ctx, v)
}

// StationsNear geocodes a city and returns the stations reporting the
// variable within radiusKm, closest first.
func (s *Service) StationsNear(ctx context.Context, city, state string, radiusKm float64, alias string) ([]Station, error) {
	if !s.geocoderEnabled {
		return nil, ErrGeocoderDisabled
	}

	v, err := ResolveVariable(alias)
	if err != nil {
		return nil, err
	}

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		State:   state,
		Country: "Australia",
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", city, err)
	}

	stations, err := s.bom.StationList(ctx, v)
	if err != nil {
		return nil, err
	}

	var near []Station
	for _, st := range stations {
		d := haversineKm(loc.Latitude, loc.Longitude, st.Lat, st.Lon)
		if d <= radiusKm {
			st.DistanceKm = d
			near = append(near, st)
		}
	}
	sort.Slice(near, func(i, j int) bool { return near[i].DistanceKm < near[j].DistanceKm })
	return near, nil
}

// DataFile fetches the BoM zipped data file for a station. c is the opaque
// token from a prior directory lookup; when nil the service performs that
// lookup first.
func (s *Service) DataFile(ctx context.Context, alias string, station int, c *int) ([]Observation, error) {
	v, err := ResolveVariable(alias)
	if err != nil {
		return nil, err
	}

	cParam := 0
	if c != nil {
		cParam = *c
	} else {
		cParam, err = s.bom.LookupC(ctx, v, station, s.lookupRadiusKm)
		if err != nil {
			return nil, err
		}
		log.Printf("resolved p_c=%d for station %06d obs code %d", cParam, station, v.Code)
	}

	return s.bom.DataFile(ctx, v, station, cParam)
}

// SILODaily fetches the SILO alldata series for a station.
func (s *Service) SILODaily(ctx context.Context, station int, start, finish time.Time) (*SILOResult, error) {
	return s.silo.AllData(ctx, station, start, finish)
}

// StationReport fetches a station's SILO series and reduces it to annual
// rainfall totals plus the interpolated/deaccumulated share of each year.
// With completeYearsOnly set, years with fewer than 365 records are dropped.
func (s *Service) StationReport(ctx context.Context, station int, start time.Time, completeYearsOnly bool, includeRecords bool) (*StationReport, error) {
	res, err := s.silo.AllData(ctx, station, start, time.Time{})
	if err != nil {
		return nil, err
	}

	annual := SummarizeAnnual(res.Records, completeYearsOnly)

	report := &StationReport{
		StationNo:          station,
		StationName:        res.Name,
		Title:              res.Title,
		FetchedAt:          time.Now().UTC(),
		Annual:             annual,
		MeanAnnualRainfall: MeanAnnualRainfall(annual),
	}
	if includeRecords {
		report.Records = res.Records
	}

	log.Printf("station %06d (%s): %d daily records over %d summarized years",
		station, res.Name, len(res.Records), len(annual))
	return report, nil
}
