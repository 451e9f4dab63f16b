package models

import (
	"strings"
	"time"
)

// undefinedAttr is what a host page leaves behind when it binds an unset
// property to an attribute.
const undefinedAttr = "undefined"

// Itinerary represents the attributes of a single flight main frame
type Itinerary struct {
	DepartureStation string   `json:"departureStation" yaml:"departureStation" validate:"required,len=3"`
	DepartureTime    string   `json:"departureTime" yaml:"departureTime" validate:"required"`
	ArrivalStation   string   `json:"arrivalStation" yaml:"arrivalStation" validate:"required,len=3"`
	ArrivalTime      string   `json:"arrivalTime" yaml:"arrivalTime" validate:"required"`
	Duration         int      `json:"duration" yaml:"duration" validate:"gte=0"`
	Flights          []string `json:"flights" yaml:"flights" validate:"required,min=1,dive,required"`
	Stops            []Stop   `json:"stops,omitempty" yaml:"stops,omitempty" validate:"omitempty,dive"`

	ReroutedDepartureStation string `json:"reroutedDepartureStation,omitempty" yaml:"reroutedDepartureStation,omitempty"`
	ReroutedArrivalStation   string `json:"reroutedArrivalStation,omitempty" yaml:"reroutedArrivalStation,omitempty"`
}

// Stop represents an intermediate landing between departure and arrival.
// IsStopover is a scheduled stop on the same aircraft; otherwise it is a
// layover (connection) and Duration may carry the wait.
type Stop struct {
	IsStopover     bool   `json:"isStopover" yaml:"isStopover"`
	ArrivalStation string `json:"arrivalStation" yaml:"arrivalStation" validate:"required"`
	Duration       string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Reroute holds the originally scheduled stations of a rerouted itinerary
type Reroute struct {
	DepartureStation string `json:"departureStation"`
	ArrivalStation   string `json:"arrivalStation"`
}

// HasReroute reports whether the itinerary discloses a reroute
func (it *Itinerary) HasReroute() bool {
	return Meaningful(it.ReroutedDepartureStation)
}

// Reroute returns the reroute pair, or nil when the itinerary was not rerouted
func (it *Itinerary) Reroute() *Reroute {
	if !it.HasReroute() {
		return nil
	}
	return &Reroute{
		DepartureStation: it.ReroutedDepartureStation,
		ArrivalStation:   it.ReroutedArrivalStation,
	}
}

// FlightLabel returns "Flight AS 123" or "Flights AS 123, AS 456"
func (it *Itinerary) FlightLabel() string {
	if len(it.Flights) == 0 {
		return ""
	}
	prefix := "Flight "
	if len(it.Flights) > 1 {
		prefix = "Flights "
	}
	return prefix + strings.Join(it.Flights, ", ")
}

// IsLayover reports whether the stop involves a change of flight
func (s *Stop) IsLayover() bool {
	return !s.IsStopover
}

// ParseTimestamp parses an ISO-8601 timestamp that carries an explicit UTC offset.
// The returned time keeps the offset so wall-clock values stay local to the station.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !Meaningful(s) {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// Meaningful reports whether an attribute value is set. The literal
// "undefined" a host page may write counts as unset.
func Meaningful(s string) bool {
	return s != "" && s != undefinedAttr
}
