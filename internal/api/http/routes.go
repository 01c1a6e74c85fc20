package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ausclimate/ausweather-service/internal/weather"
	"github.com/ausclimate/ausweather-service/internal/weather/providers"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/variables", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"variables": service.Variables()})
	})

	v1.Get("/variables/:alias", func(c *fiber.Ctx) error {
		v, err := service.Resolve(c.Params("alias"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(v)
	})

	v1.Get("/bom/stations", func(c *fiber.Ctx) error {
		var req stationsQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		stations, err := service.Stations(c.Context(), req.Variable)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{
			"variable": req.Variable,
			"count":    len(stations),
			"stations": stations,
		})
	})

	v1.Get("/bom/stations/near", func(c *fiber.Ctx) error {
		var req nearQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		stations, err := service.StationsNear(c.Context(), req.City, req.State, req.RadiusKm, req.Variable)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{
			"city":     req.City,
			"radiusKm": req.RadiusKm,
			"count":    len(stations),
			"stations": stations,
		})
	})

	v1.Get("/bom/data", func(c *fiber.Ctx) error {
		var req dataQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		obs, err := service.DataFile(c.Context(), req.Variable, req.Station, req.C)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{
			"variable":     req.Variable,
			"station":      req.Station,
			"count":        len(obs),
			"observations": obs,
		})
	})

	v1.Get("/silo/daily", func(c *fiber.Ctx) error {
		var req siloQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := service.SILODaily(c.Context(), req.Station, req.Start, req.Finish)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(res)
	})

	v1.Get("/silo/annual-rainfall", func(c *fiber.Ctx) error {
		var req annualQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.StationReport(c.Context(), req.Station, req.Start, req.CompleteYears, req.IncludeRecords)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(report)
	})
}

// mapServiceError translates domain errors into HTTP statuses. Caller-input
// errors surface as 400, missing upstream data as 404, disabled features as
// 503, and upstream failures as 502.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, weather.ErrUnknownVariable),
		errors.Is(err, weather.ErrInvalidStation),
		errors.Is(err, weather.ErrInvalidInterval):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, providers.ErrStationNotListed):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrGeocoderDisabled),
		errors.Is(err, providers.ErrMissingEmail):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, providers.ErrUnexpectedStatus):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadGateway, "upstream request failed: "+err.Error())
	}
}

// stationsQuery holds query parameters for the station list endpoint.
type stationsQuery struct {
	Variable string `validate:"required"`
}

func (q *stationsQuery) bind(c *fiber.Ctx) error {
	q.Variable = c.Query("variable")
	return validate.Struct(q)
}

// nearQuery holds query parameters for the proximity search endpoint.
type nearQuery struct {
	Variable string  `validate:"required"`
	City     string  `validate:"required"`
	State    string
	RadiusKm float64 `validate:"gt=0,lte=1000"`
}

func (q *nearQuery) bind(c *fiber.Ctx) error {
	q.Variable = c.Query("variable")
	q.City = c.Query("city")
	q.State = c.Query("state")

	radius, err := strconv.ParseFloat(c.Query("radius_km", "100"), 64)
	if err != nil {
		return errors.New("invalid radius_km")
	}
	q.RadiusKm = radius

	return validate.Struct(q)
}

// dataQuery holds query parameters for the BoM data-file endpoint.
type dataQuery struct {
	Variable string `validate:"required"`
	Station  int    `validate:"min=0,max=999999"`
	C        *int
}

func (q *dataQuery) bind(c *fiber.Ctx) error {
	q.Variable = c.Query("variable")

	station, err := parseStation(c.Query("station"))
	if err != nil {
		return err
	}
	q.Station = station

	if raw := c.Query("c"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("invalid c parameter")
		}
		q.C = &n
	}

	return validate.Struct(q)
}

// siloQuery holds query parameters for the SILO daily endpoint.
type siloQuery struct {
	Station int `validate:"min=0,max=999999"`
	Start   time.Time
	Finish  time.Time
}

func (q *siloQuery) bind(c *fiber.Ctx) error {
	station, err := parseStation(c.Query("station"))
	if err != nil {
		return err
	}
	q.Station = station

	if raw := c.Query("start"); raw != "" {
		if q.Start, err = parseDate(raw); err != nil {
			return err
		}
	}
	if raw := c.Query("finish"); raw != "" {
		if q.Finish, err = parseDate(raw); err != nil {
			return err
		}
	}

	return validate.Struct(q)
}

// annualQuery holds query parameters for the annual rainfall endpoint.
type annualQuery struct {
	Station        int `validate:"min=0,max=999999"`
	Start          time.Time
	CompleteYears  bool
	IncludeRecords bool
}

func (q *annualQuery) bind(c *fiber.Ctx) error {
	station, err := parseStation(c.Query("station"))
	if err != nil {
		return err
	}
	q.Station = station

	if raw := c.Query("start"); raw != "" {
		if q.Start, err = parseDate(raw); err != nil {
			return err
		}
	}
	q.CompleteYears = c.QueryBool("complete_years", false)
	q.IncludeRecords = c.QueryBool("include_records", false)

	return validate.Struct(q)
}

func parseStation(s string) (int, error) {
	if s == "" {
		return 0, errors.New("station query parameter is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid station number")
	}
	return n, nil
}

// parseDate accepts YYYYMMDD (the SILO wire format) or YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("20060102", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("invalid date; use YYYYMMDD or YYYY-MM-DD")
}
