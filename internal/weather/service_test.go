package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubBoM struct {
	lookups int
	lastC   int
}

func (s *stubBoM) StationList(ctx context.Context, v Variable) ([]Station, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBoM) LookupC(ctx context.Context, v Variable, station, radiusKm int) (int, error) {
	s.lookups++
	return -108978592, nil
}

func (s *stubBoM) DataFile(ctx context.Context, v Variable, station, c int) ([]Observation, error) {
	s.lastC = c
	return []Observation{{Station: station, Year: 1990, Month: 1, Day: 1, Value: 1.5}}, nil
}

type stubSILO struct {
	result *SILOResult
}

func (s *stubSILO) AllData(ctx context.Context, station int, start, finish time.Time) (*SILOResult, error) {
	return s.result, nil
}

func TestServiceDataFileLookupWhenCMissing(t *testing.T) {
	bom := &stubBoM{}
	svc := NewService(bom, nil, "", 0)

	obs, err := svc.DataFile(context.Background(), "daily_rain", 23343, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bom.lookups != 1 {
		t.Errorf("lookups = %d, want 1", bom.lookups)
	}
	if bom.lastC != -108978592 {
		t.Errorf("c passed through = %d, want -108978592", bom.lastC)
	}
	if len(obs) != 1 {
		t.Fatalf("got %d observations, want 1", len(obs))
	}
}

func TestServiceDataFileSkipsLookupWhenCSupplied(t *testing.T) {
	bom := &stubBoM{}
	svc := NewService(bom, nil, "", 0)

	c := -105819125
	if _, err := svc.DataFile(context.Background(), "monthly_rain", 23000, &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bom.lookups != 0 {
		t.Errorf("lookups = %d, want 0", bom.lookups)
	}
	if bom.lastC != c {
		t.Errorf("c passed through = %d, want %d", bom.lastC, c)
	}
}

func TestServiceDataFileUnknownVariable(t *testing.T) {
	svc := NewService(&stubBoM{}, nil, "", 0)
	_, err := svc.DataFile(context.Background(), "hourly_rain", 23000, nil)
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("error = %v, want ErrUnknownVariable", err)
	}
}

func TestServiceStationReport(t *testing.T) {
	records := yearOfRecords(1990, 365, 2.0, 0)
	records = append(records, yearOfRecords(1991, 30, 1.0, 25)...)

	silo := &stubSILO{result: &SILOResult{
		Station: 23343,
		Name:    "WAITE INSTITUTE",
		Title:   "23343 WAITE INSTITUTE",
		Records: records,
	}}
	svc := NewService(nil, silo, "", 0)

	report, err := svc.StationReport(context.Background(), 23343, time.Time{}, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.StationName != "WAITE INSTITUTE" {
		t.Errorf("name = %q", report.StationName)
	}
	if len(report.Annual) != 1 {
		t.Fatalf("annual years = %d, want 1 (complete years only)", len(report.Annual))
	}
	if report.Annual[0].Rainfall != 730.0 {
		t.Errorf("1990 rainfall = %v, want 730", report.Annual[0].Rainfall)
	}
	if report.MeanAnnualRainfall != 730.0 {
		t.Errorf("mean = %v, want 730", report.MeanAnnualRainfall)
	}
	if report.Records != nil {
		t.Errorf("records included without includeRecords")
	}
}

func TestServiceGeocoderDisabled(t *testing.T) {
	svc := NewService(&stubBoM{}, nil, "", 0)
	_, err := svc.StationsNear(context.Background(), "Adelaide", "SA", 50, "daily_rain")
	if !errors.Is(err, ErrGeocoderDisabled) {
		t.Errorf("error = %v, want ErrGeocoderDisabled", err)
	}
}
