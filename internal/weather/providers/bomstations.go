package providers

import (
	"bufio"
	"bytes"
	"strconv"

	"github.com/ausclimate/ausweather-service/internal/common"
	"github.com/ausclimate/ausweather-service/internal/weather"
)

// Column byte offsets of the alphaAUS_<code>.txt fixed-width table.
var stationListCols = struct {
	site, name, lat, lon, start, end, years, pct, aws [2]int
}{
	site:  [2]int{0, 8},
	name:  [2]int{8, 49},
	lat:   [2]int{49, 59},
	lon:   [2]int{59, 68},
	start: [2]int{68, 77},
	end:   [2]int{77, 86},
	years: [2]int{86, 93},
	pct:   [2]int{93, 97},
	aws:   [2]int{97, 102},
}

// parseStationList decodes the BoM fixed-width station list. The file
// carries a few header lines and a footer (totals, copyright notice); only
// lines whose site column is numeric are station rows, so header and footer
// are skipped without counting them.
func parseStationList(body []byte, v weather.Variable) ([]weather.Station, error) {
	var stations []weather.Station

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()

		site, err := strconv.Atoi(common.Field(line, stationListCols.site[0], stationListCols.site[1]))
		if err != nil {
			continue
		}

		st := weather.Station{
			Site:           site,
			Name:           common.Field(line, stationListCols.name[0], stationListCols.name[1]),
			Start:          common.Field(line, stationListCols.start[0], stationListCols.start[1]),
			End:            common.Field(line, stationListCols.end[0], stationListCols.end[1]),
			AWS:            common.Field(line, stationListCols.aws[0], stationListCols.aws[1]),
			ObsCode:        v.Code,
			ObsDescription: v.Name,
		}
		st.Lat, _ = strconv.ParseFloat(common.Field(line, stationListCols.lat[0], stationListCols.lat[1]), 64)
		st.Lon, _ = strconv.ParseFloat(common.Field(line, stationListCols.lon[0], stationListCols.lon[1]), 64)
		st.Years, _ = strconv.ParseFloat(common.Field(line, stationListCols.years[0], stationListCols.years[1]), 64)
		st.PercentComplete, _ = strconv.ParseFloat(common.Field(line, stationListCols.pct[0], stationListCols.pct[1]), 64)

		stations = append(stations, st)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
