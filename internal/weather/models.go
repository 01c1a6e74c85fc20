package weather

import (
	"time"
)

// Station is one row of the BoM fixed-width station list, annotated with the
// observation code the list was fetched for.
type Station struct {
	Site            int     `json:"site"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	Start           string  `json:"start"` // month-year as published, e.g. "Jan 1965"
	End             string  `json:"end"`
	Years           float64 `json:"years"`
	PercentComplete float64 `json:"percentComplete"`
	AWS             string  `json:"aws"`
	ObsCode         int     `json:"obsCode"`
	ObsDescription  string  `json:"obsDescription"`

	// DistanceKm is filled only by proximity searches.
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

// Observation is one row of a BoM zipped data file, normalized across
// variables. Day is zero for monthly series.
type Observation struct {
	ProductCode string  `json:"productCode"`
	Station     int     `json:"station"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day,omitempty"`
	Value       float64 `json:"value"`
	Quality     string  `json:"quality"`
}

// DailyRecord is one day of a SILO Patched Point "alldata" series. The
// source-code fields carry SILO's provenance codes: 0 observed, 15
// deaccumulated, 25/35/75 interpolated.
type DailyRecord struct {
	Date      time.Time `json:"date"`
	DayOfYear int       `json:"dayOfYear"`

	MaxTemp         float64 `json:"maxTemp"`
	MaxTempSource   int     `json:"maxTempSource"`
	MinTemp         float64 `json:"minTemp"`
	MinTempSource   int     `json:"minTempSource"`
	Rain            float64 `json:"rain"`
	RainSource      int     `json:"rainSource"`
	Evap            float64 `json:"evap"`
	Radiation       float64 `json:"radiation"`
	RadiationSource int     `json:"radiationSource"`
	VapourPressure  float64 `json:"vapourPressure"`
	VapourPressSrc  int     `json:"vapourPressureSource"`
	RHMaxT          float64 `json:"rhMaxT"`
	RHMinT          float64 `json:"rhMinT"`
	FAO56           float64 `json:"fao56"`
	MSLPressure     float64 `json:"mslPressure"`
	MSLPressureSrc  int     `json:"mslPressureSource"`
}

// SILOResult is the parsed response of a SILO alldata call.
type SILOResult struct {
	Station  int           `json:"station"`
	Name     string        `json:"name"`  // station name extracted from the comment block
	Title    string        `json:"title"` // "<number> <name>" line with the Lat suffix stripped
	Comments []string      `json:"comments,omitempty"`
	Records  []DailyRecord `json:"records"`
}

// StationReport is the annual-rainfall view of a station's SILO series,
// suitable for feeding a bar chart of yearly totals.
type StationReport struct {
	StationNo          int             `json:"stationNo"`
	StationName        string          `json:"stationName"`
	Title              string          `json:"title"`
	FetchedAt          time.Time       `json:"fetchedAt"`
	Records            []DailyRecord   `json:"records,omitempty"`
	Annual             []AnnualSummary `json:"annual"`
	MeanAnnualRainfall float64         `json:"meanAnnualRainfall"`
}
