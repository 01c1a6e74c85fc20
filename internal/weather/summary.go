package weather

import "sort"

// SILO source codes counted as interpolated rainfall; 15 marks rainfall
// deaccumulated from a multi-day observation.
var interpolatedSources = map[int]bool{25: true, 35: true, 75: true}

const deaccumulatedSource = 15

// daysPerYear is the fixed denominator used for the source-code percentages,
// so partial years read as a fraction of a full year rather than 100%.
const daysPerYear = 365.25

// AnnualSummary holds one calendar year of a station's rainfall series.
type AnnualSummary struct {
	Year     int     `json:"year"`
	Rainfall float64 `json:"rainfall"` // mm, total over the year
	Days     int     `json:"days"`     // records contributing to the year

	// Percentage of the year whose rainfall was interpolated or
	// deaccumulated rather than directly observed.
	PctInterpolated  float64 `json:"pctInterpolated"`
	PctDeaccumulated float64 `json:"pctDeaccumulated"`
}

// SummarizeAnnual groups daily records by calendar year and totals rainfall
// per year, alongside the share of each year sourced from interpolated or
// deaccumulated values. With completeYearsOnly set, years with fewer than
// 365 records are dropped before summarizing.
func SummarizeAnnual(records []DailyRecord, completeYearsOnly bool) []AnnualSummary {
	byYear := make(map[int][]DailyRecord)
	for _, r := range records {
		y := r.Date.Year()
		byYear[y] = append(byYear[y], r)
	}

	years := make([]int, 0, len(byYear))
	for y, recs := range byYear {
		if completeYearsOnly && len(recs) < 365 {
			continue
		}
		years = append(years, y)
	}
	sort.Ints(years)

	summaries := make([]AnnualSummary, 0, len(years))
	for _, y := range years {
		s := AnnualSummary{Year: y}
		var interpolated, deaccumulated int
		for _, r := range byYear[y] {
			s.Rainfall += r.Rain
			s.Days++
			if interpolatedSources[r.RainSource] {
				interpolated++
			}
			if r.RainSource == deaccumulatedSource {
				deaccumulated++
			}
		}
		s.PctInterpolated = float64(interpolated) / daysPerYear * 100
		s.PctDeaccumulated = float64(deaccumulated) / daysPerYear * 100
		summaries = append(summaries, s)
	}

	return summaries
}

// MeanAnnualRainfall averages the yearly totals of the summaries. Returns
// zero for an empty slice.
func MeanAnnualRainfall(summaries []AnnualSummary) float64 {
	if len(summaries) == 0 {
		return 0
	}
	var sum float64
	for _, s := range summaries {
		sum += s.Rainfall
	}
	return sum / float64(len(summaries))
}
