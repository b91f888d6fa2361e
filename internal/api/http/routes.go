package httpapi

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/crop-advisor/internal/location"
	"github.com/i474232898/crop-advisor/internal/orchestrator"
	"github.com/i474232898/crop-advisor/internal/pricing"
	"github.com/i474232898/crop-advisor/internal/store"
	"github.com/i474232898/crop-advisor/internal/suggestion"
)

// SessionHeader carries the form session a submission belongs to.
const SessionHeader = "X-Session-ID"

var validate = validator.New()

// ErrorHandler renders every handler error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// HealthReporter exposes the runtime state shown by /health.
type HealthReporter interface {
	EstimatorState() string
	Sessions() int
}

// RegisterHealth adds the /health endpoint.
func RegisterHealth(app *fiber.App, service string, h HealthReporter) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   service,
			"estimator": h.EstimatorState(),
			"sessions":  h.Sessions(),
		})
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, locations *location.Catalog, suggestions *suggestion.Catalog, orch *orchestrator.Orchestrator) {
	v1 := app.Group("/api/v1")

	v1.Get("/regions", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"regions": locations.Regions()})
	})

	v1.Get("/regions/:region/cities", func(c *fiber.Ctx) error {
		region, err := pathParam(c, "region")
		if err != nil {
			return err
		}
		cities := locations.CitiesOf(region)
		if len(cities) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "unknown region")
		}
		return c.JSON(fiber.Map{"region": region, "cities": cities})
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"cities": locations.AllCities()})
	})

	v1.Get("/cities/:city/region", func(c *fiber.Ctx) error {
		city, err := pathParam(c, "city")
		if err != nil {
			return err
		}
		region, ok := locations.RegionOf(city)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "not found")
		}
		return c.JSON(fiber.Map{"city": city, "region": region})
	})

	v1.Get("/crops", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"crops": pricing.Crops()})
	})

	v1.Get("/suggestions", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(suggestions.View(q.Location))
	})

	v1.Get("/suggestions/locations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"locations": suggestions.Locations()})
	})

	v1.Get("/climate", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		rec, ok := suggestions.ClimateFor(q.Location)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no climate data for requested location")
		}
		return c.JSON(rec)
	})

	v1.Post("/estimates", func(c *fiber.Ctx) error {
		var req estimateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		res, err := orch.Submit(c.UserContext(), utils.CopyString(c.Get(SessionHeader)), req.toForm())
		if res.SessionID != "" {
			c.Set(SessionHeader, res.SessionID)
		}
		if err != nil {
			var verr *orchestrator.ValidationError
			var failure *orchestrator.EstimationFailure
			switch {
			case errors.As(err, &verr):
				return fiber.NewError(fiber.StatusUnprocessableEntity, verr.Reason)
			case errors.Is(err, orchestrator.ErrSuperseded):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			case errors.As(err, &failure):
				return fiber.NewError(fiber.StatusServiceUnavailable, failure.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "failed to estimate price")
			}
		}

		return c.JSON(res)
	})

	v1.Get("/sessions/:id", func(c *fiber.Ctx) error {
		d, err := orch.Current(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load session")
		}
		return c.JSON(d)
	})
}

func pathParam(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

// locationQuery holds the query parameter naming a location.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.Location = strings.TrimSpace(c.Query("location"))

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// estimateRequest is the JSON body of an estimate submission. Quantity is
// accepted either as a JSON string (raw form input) or a number.
type estimateRequest struct {
	Location string         `json:"location"`
	CropType string         `json:"cropType"`
	Quantity quantityString `json:"quantity"`
}

func (r estimateRequest) toForm() orchestrator.Form {
	return orchestrator.Form{
		Location: r.Location,
		CropType: r.CropType,
		Quantity: string(r.Quantity),
	}
}

type quantityString string

func (q *quantityString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = quantityString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("quantity must be a string or a number")
	}
	*q = quantityString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}
