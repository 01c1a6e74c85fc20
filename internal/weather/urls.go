package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStation is returned when a station code is not representable
	// as a 6-digit BoM station number.
	ErrInvalidStation = errors.New("station code out of range")

	// ErrInvalidInterval is returned when an interval is not one of the
	// enumerated values.
	ErrInvalidInterval = errors.New("invalid interval")
)

const (
	dataFilePath         = "/jsp/ncc/cdio/weatherData/av"
	stationDirectoryPath = "/jsp/ncc/cdio/weatherStationDirectory/d"
	stationListPath      = "/climate/data/lists_by_element"
)

// DataFileURL builds the BoM zipped-data-file request URL for an observation
// code, station, and interval. The c parameter is the opaque token returned
// by a prior station directory lookup; it is passed through unmodified (BoM
// returns it as a negative integer and the derivation is undocumented).
//
// Station codes must fit in 6 digits; values below 100000 are zero-padded.
// The function is pure: identical inputs always yield the identical string.
func DataFileURL(base string, code int, interval Interval, station, c int) (string, error) {
	if station < 0 || station > 999999 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStation, station)
	}
	if !interval.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, interval)
	}
	return fmt.Sprintf(
		"%s%s?p_display_type=%sZippedDataFile&p_stn_num=%06d&p_nccObsCode=%d&p_c=%d",
		base, dataFilePath, interval, station, code, c,
	), nil
}

// StationDirectoryURL builds the ajaxStnListing URL used to look up the c
// parameter for a station, listing all stations within radiusKm.
func StationDirectoryURL(base string, code, station, radiusKm int) (string, error) {
	if station < 0 || station > 999999 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStation, station)
	}
	return fmt.Sprintf(
		"%s%s?p_display_type=ajaxStnListing&p_nccObsCode=%d&p_stnNum=%06d&p_radius=%d",
		base, stationDirectoryPath, code, station, radiusKm,
	), nil
}

// StationListURL builds the URL of the fixed-width station list for an
// observation code, covering all of Australia.
func StationListURL(base string, code int) string {
	return fmt.Sprintf("%s%s/alphaAUS_%d.txt", base, stationListPath, code)
}
