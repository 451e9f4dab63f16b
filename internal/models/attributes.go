package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is shared; validator caches struct metadata per type
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their attribute names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the itinerary at the render boundary.
// The first failure is returned as an *AttributeError.
func (it *Itinerary) Validate() error {
	if err := validate.Struct(it); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fromFieldError(verrs[0])
		}
		return err
	}

	if it.HasReroute() && !Meaningful(it.ReroutedArrivalStation) {
		return ErrMissing("reroutedArrivalStation")
	}

	if _, err := ParseTimestamp(it.DepartureTime); err != nil {
		return ErrTimestamp("departureTime", it.DepartureTime)
	}
	if _, err := ParseTimestamp(it.ArrivalTime); err != nil {
		return ErrTimestamp("arrivalTime", it.ArrivalTime)
	}

	return nil
}

func fromFieldError(fe validator.FieldError) error {
	value := fmt.Sprint(fe.Value())

	// Namespace looks like "Itinerary.stops[1].arrivalStation"
	ns := fe.Namespace()
	if i := strings.Index(ns, "stops["); i >= 0 {
		return NewAttributeError(ns[i:], value, ErrMalformedStopEntry)
	}

	switch fe.Tag() {
	case "required", "min":
		return ErrMissing(fe.Field())
	default:
		return NewAttributeError(fe.Field(), value, ErrInvalidAttribute)
	}
}

// LoadItineraries decodes a JSON or YAML document holding either one
// itinerary or a list of them.
func LoadItineraries(data []byte) ([]Itinerary, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("no itineraries found")
	}

	var list []Itinerary
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse itinerary list: %w", err)
		}
	case '{':
		var it Itinerary
		if err := json.Unmarshal(trimmed, &it); err != nil {
			return nil, fmt.Errorf("failed to parse itinerary: %w", err)
		}
		list = []Itinerary{it}
	default:
		if err := yaml.Unmarshal(trimmed, &list); err != nil {
			var it Itinerary
			if err := yaml.Unmarshal(trimmed, &it); err != nil {
				return nil, fmt.Errorf("failed to parse itinerary YAML: %w", err)
			}
			list = []Itinerary{it}
		}
	}

	if len(list) == 0 {
		return nil, errors.New("no itineraries found")
	}
	return list, nil
}

// FromAttributes builds an itinerary from raw attribute strings as a host
// document would set them. Names match case-insensitively and may be written
// camelCase, lowercase or kebab-case ("departureStation", "departurestation",
// "departure-station"). Flights and stops are JSON arrays; flights may also
// be a comma-separated list.
func FromAttributes(attrs map[string]string) (*Itinerary, error) {
	normalized := make(map[string]string, len(attrs))
	for k, v := range attrs {
		normalized[normalizeAttrName(k)] = strings.TrimSpace(v)
	}
	get := func(name string) string {
		return normalized[normalizeAttrName(name)]
	}

	it := &Itinerary{
		DepartureStation:         get("departureStation"),
		DepartureTime:            get("departureTime"),
		ArrivalStation:           get("arrivalStation"),
		ArrivalTime:              get("arrivalTime"),
		ReroutedDepartureStation: get("reroutedDepartureStation"),
		ReroutedArrivalStation:   get("reroutedArrivalStation"),
	}

	if d := get("duration"); Meaningful(d) {
		minutes, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return nil, NewAttributeError("duration", d, ErrInvalidAttribute)
		}
		it.Duration = int(math.Round(minutes))
	}

	if f := get("flights"); Meaningful(f) {
		flights, err := parseFlights(f)
		if err != nil {
			return nil, NewAttributeError("flights", f, ErrInvalidAttribute)
		}
		it.Flights = flights
	}

	if s := get("stops"); Meaningful(s) {
		var stops []Stop
		if err := json.Unmarshal([]byte(s), &stops); err != nil {
			return nil, NewAttributeError("stops", s, ErrMalformedStopEntry)
		}
		it.Stops = stops
	}

	return it, nil
}

func parseFlights(s string) ([]string, error) {
	if strings.HasPrefix(s, "[") {
		var flights []string
		if err := json.Unmarshal([]byte(s), &flights); err != nil {
			return nil, err
		}
		return flights, nil
	}

	var flights []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			flights = append(flights, part)
		}
	}
	return flights, nil
}

func normalizeAttrName(name string) string {
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.ToLower(name)
}
