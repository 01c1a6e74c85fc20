package weather

import (
	"context"
	"time"
)

// BoMProvider abstracts the Bureau of Meteorology climate-data endpoints.
type BoMProvider interface {
	// StationList fetches the fixed-width list of all Australian stations
	// reporting the variable.
	StationList(ctx context.Context, v Variable) ([]Station, error)

	// LookupC resolves the opaque p_c token a data-file request needs, by
	// querying the station directory listing around the station.
	LookupC(ctx context.Context, v Variable, station, radiusKm int) (int, error)

	// DataFile fetches and unpacks the zipped data file for a station.
	DataFile(ctx context.Context, v Variable, station, c int) ([]Observation, error)
}

// SILOProvider abstracts the SILO Patched Point Dataset endpoint.
type SILOProvider interface {
	// AllData fetches the daily "alldata" series for a BoM station. Zero
	// start and finish times fall back to the provider defaults (1889-01-01
	// through today).
	AllData(ctx context.Context, station int, start, finish time.Time) (*SILOResult, error)
}
