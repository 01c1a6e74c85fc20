package providers

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/ausclimate/ausweather-service/internal/weather"
)

var errNoDataMember = errors.New("no data csv in archive")

// Row shapes of the CSV inside a BoM zipped data file. Column headers are
// variable-specific, so each supported obs code gets its own struct. Value
// columns are pointers: an empty cell means no observation for that row.

type dailyRainfallRow struct {
	ProductCode string   `csv:"Product code"`
	Station     int      `csv:"Bureau of Meteorology station number"`
	Year        int      `csv:"Year"`
	Month       int      `csv:"Month"`
	Day         int      `csv:"Day"`
	Rainfall    *float64 `csv:"Rainfall amount (millimetres),omitempty"`
	Quality     string   `csv:"Quality"`
}

type dailyMaxTempRow struct {
	ProductCode string   `csv:"Product code"`
	Station     int      `csv:"Bureau of Meteorology station number"`
	Year        int      `csv:"Year"`
	Month       int      `csv:"Month"`
	Day         int      `csv:"Day"`
	MaxTemp     *float64 `csv:"Maximum temperature (Degree C),omitempty"`
	Quality     string   `csv:"Quality"`
}

type monthlyRainfallRow struct {
	ProductCode string   `csv:"Product code"`
	Station     int      `csv:"Bureau of Meteorology station number"`
	Year        int      `csv:"Year"`
	Month       int      `csv:"Month"`
	Rainfall    *float64 `csv:"Monthly Precipitation Total (millimetres),omitempty"`
	Quality     string   `csv:"Quality"`
}

// decodeDataArchive unpacks a zipped data file in memory and decodes its
// data CSV member into observations. Rows with an empty value cell (days
// with no observation) are dropped.
func decodeDataArchive(body []byte, v weather.Variable) ([]weather.Observation, error) {
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("opening data archive: %w", err)
	}

	// Archives hold a notes file alongside the data; the data member is the
	// csv with "Data" in its name (e.g. IDCJAC0009_023000_1800_Data.csv).
	var member io.ReadCloser
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".csv") && strings.Contains(f.Name, "Data") {
			member, err = f.Open()
			if err != nil {
				return nil, err
			}
			break
		}
	}
	if member == nil {
		return nil, errNoDataMember
	}
	defer member.Close()

	csvBytes, err := io.ReadAll(member)
	if err != nil {
		return nil, err
	}

	switch v.Code {
	case 136:
		var rows []dailyRainfallRow
		if err := gocsv.UnmarshalBytes(csvBytes, &rows); err != nil {
			return nil, fmt.Errorf("decoding daily rainfall csv: %w", err)
		}
		obs := make([]weather.Observation, 0, len(rows))
		for _, r := range rows {
			if r.Rainfall == nil {
				continue
			}
			obs = append(obs, weather.Observation{
				ProductCode: r.ProductCode,
				Station:     r.Station,
				Year:        r.Year,
				Month:       r.Month,
				Day:         r.Day,
				Value:       *r.Rainfall,
				Quality:     r.Quality,
			})
		}
		return obs, nil

	case 122:
		var rows []dailyMaxTempRow
		if err := gocsv.UnmarshalBytes(csvBytes, &rows); err != nil {
			return nil, fmt.Errorf("decoding daily max temp csv: %w", err)
		}
		obs := make([]weather.Observation, 0, len(rows))
		for _, r := range rows {
			if r.MaxTemp == nil {
				continue
			}
			obs = append(obs, weather.Observation{
				ProductCode: r.ProductCode,
				Station:     r.Station,
				Year:        r.Year,
				Month:       r.Month,
				Day:         r.Day,
				Value:       *r.MaxTemp,
				Quality:     r.Quality,
			})
		}
		return obs, nil

	case 139:
		var rows []monthlyRainfallRow
		if err := gocsv.UnmarshalBytes(csvBytes, &rows); err != nil {
			return nil, fmt.Errorf("decoding monthly rainfall csv: %w", err)
		}
		obs := make([]weather.Observation, 0, len(rows))
		for _, r := range rows {
			if r.Rainfall == nil {
				continue
			}
			obs = append(obs, weather.Observation{
				ProductCode: r.ProductCode,
				Station:     r.Station,
				Year:        r.Year,
				Month:       r.Month,
				Value:       *r.Rainfall,
				Quality:     r.Quality,
			})
		}
		return obs, nil
	}

	return nil, fmt.Errorf("%w: obs code %d has no csv layout", weather.ErrUnknownVariable, v.Code)
}
