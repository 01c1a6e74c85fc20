package providers

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ausclimate/ausweather-service/internal/weather"
)

// DefaultSILOBaseURL is the production Long Paddock host.
const DefaultSILOBaseURL = "https://www.longpaddock.qld.gov.au"

const (
	siloPath = "/cgi-bin/silo/PatchedPointDataset.php"

	// Earliest date SILO holds data for.
	siloEpoch = "18890101"

	siloDateFormat = "20060102"

	stationTitleMarker = "Patched Point data for station"
)

// SILOClient fetches Patched Point Dataset series from SILO. Email is
// required by SILO's terms of use (no account needed).
type SILOClient struct {
	baseURL string
	email   string
	client  *http.Client
}

// NewSILOClient creates a SILO client. An empty baseURL selects the
// production host.
func NewSILOClient(client *http.Client, baseURL, email string) *SILOClient {
	if baseURL == "" {
		baseURL = DefaultSILOBaseURL
	}
	return &SILOClient{
		baseURL: baseURL,
		email:   email,
		client:  client,
	}
}

// AllData fetches the daily "alldata" series for a BoM station. A zero
// start falls back to the SILO epoch (1889-01-01); a zero finish falls back
// to today.
func (c *SILOClient) AllData(ctx context.Context, station int, start, finish time.Time) (*weather.SILOResult, error) {
	if c.email == "" {
		return nil, ErrMissingEmail
	}

	startStr := siloEpoch
	if !start.IsZero() {
		startStr = start.Format(siloDateFormat)
	}
	finishStr := time.Now().Format(siloDateFormat)
	if !finish.IsZero() {
		finishStr = finish.Format(siloDateFormat)
	}

	u := fmt.Sprintf("%s%s?start=%s&finish=%s&station=%d&format=alldata&username=%s",
		c.baseURL, siloPath, startStr, finishStr, station, c.email)
	log.Printf("fetching SILO alldata for station %d (%s..%s)", station, startStr, finishStr)

	body, err := getBody(ctx, c.client, u)
	if err != nil {
		return nil, err
	}
	return parseAllData(body, station)
}

// parseAllData decodes a SILO alldata response: a block of quoted comment
// lines, a header row naming the columns, a units row, then one
// whitespace-delimited row per day. Columns are located by header name so
// ordering changes upstream do not break the parse.
func parseAllData(body []byte, station int) (*weather.SILOResult, error) {
	res := &weather.SILOResult{Station: station}

	var cols map[string]int

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, `"`) {
			res.Comments = append(res.Comments, line)
			continue
		}

		if cols == nil {
			fields := strings.Fields(trimmed)
			if len(fields) > 0 && fields[0] == "Date" {
				cols = make(map[string]int, len(fields))
				for i, name := range fields {
					cols[name] = i
				}
			}
			// Anything before the header row that is neither a comment nor
			// the header itself is noise.
			continue
		}

		fields := strings.Fields(trimmed)
		rec, ok := parseAllDataRow(fields, cols)
		if !ok {
			// The units row and any footer text fail the date parse.
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if cols == nil {
		return nil, fmt.Errorf("silo response for station %d has no alldata header", station)
	}

	res.Name, res.Title = stationTitle(res.Comments, station)
	return res, nil
}

func parseAllDataRow(fields []string, cols map[string]int) (weather.DailyRecord, bool) {
	var rec weather.DailyRecord

	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(fields) {
			return ""
		}
		return fields[i]
	}
	f64 := func(name string) float64 {
		v, _ := strconv.ParseFloat(field(name), 64)
		return v
	}
	i64 := func(name string) int {
		v, _ := strconv.Atoi(field(name))
		return v
	}

	date, err := time.Parse(siloDateFormat, field("Date"))
	if err != nil {
		return rec, false
	}
	rec.Date = date

	rec.DayOfYear = i64("Day")
	rec.MaxTemp = f64("T.Max")
	rec.MaxTempSource = i64("Smx")
	rec.MinTemp = f64("T.Min")
	rec.MinTempSource = i64("Smn")
	rec.Rain = f64("Rain")
	rec.RainSource = i64("Srn")
	rec.Evap = f64("Evap")
	rec.Radiation = f64("Radn")
	rec.RadiationSource = i64("Ssl")
	rec.VapourPressure = f64("VP")
	rec.VapourPressSrc = i64("Svp")
	rec.RHMaxT = f64("RHmaxT")
	rec.RHMinT = f64("RHminT")
	rec.FAO56 = f64("FAO56")
	rec.MSLPressure = f64("MSLPres")
	rec.MSLPressureSrc = i64("Sp")

	return rec, true
}

// stationTitle extracts the station name from the comment block. The line
// looks like:
//
//	"Patched Point data for station: 23343 WAITE INSTITUTE    Lat: -34.97 Long: 138.63"
//
// Title keeps the station number and name; Name drops the number.
func stationTitle(comments []string, station int) (name, title string) {
	for _, line := range comments {
		if !strings.Contains(line, stationTitleMarker) {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 2 {
			break
		}
		title = strings.TrimSpace(strings.ReplaceAll(parts[1], "Lat", ""))
		name = strings.TrimSpace(strings.ReplaceAll(title, strconv.Itoa(station), ""))
		break
	}
	return name, title
}
