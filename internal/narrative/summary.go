// Package narrative composes the screen-reader summary of a flight main frame.
package narrative

import (
	"strconv"
	"strings"

	"github.com/mobil-koeln/flightframe/internal/models"
)

// Composer builds accessible itinerary sentences
type Composer struct {
	Times TimeFormatter
}

// NewComposer creates a composer for the given locale
func NewComposer(locale string) *Composer {
	if locale == "" {
		locale = DefaultLocale
	}
	return &Composer{Times: TimeFormatter{Locale: locale}}
}

// ComposeSummary builds the narrative with the default locale.
func ComposeSummary(it *models.Itinerary, reroute *models.Reroute, stops []models.Stop, dayOffset int) (string, error) {
	return NewComposer(DefaultLocale).Compose(it, reroute, stops, dayOffset)
}

// Summary validates the itinerary, derives the reroute, stops and day offset
// from it and composes its narrative.
func (c *Composer) Summary(it *models.Itinerary) (string, error) {
	if it == nil {
		return "", models.ErrMissing("itinerary")
	}
	if err := it.Validate(); err != nil {
		return "", err
	}
	dayOffset, err := DateDifference(it.DepartureTime, it.ArrivalTime)
	if err != nil {
		return "", err
	}
	return c.Compose(it, it.Reroute(), it.Stops, dayOffset)
}

// Compose builds one sentence describing the route, reroute status, day
// offset and stops of an itinerary. A nil or empty stops sequence reads as
// "nonstop". Missing stations and unparseable times are returned as errors;
// no partial sentence is produced.
func (c *Composer) Compose(it *models.Itinerary, reroute *models.Reroute, stops []models.Stop, dayOffset int) (string, error) {
	if it == nil {
		return "", models.ErrMissing("itinerary")
	}
	if !models.Meaningful(it.DepartureStation) {
		return "", models.ErrMissing("departureStation")
	}
	if !models.Meaningful(it.ArrivalStation) {
		return "", models.ErrMissing("arrivalStation")
	}

	depTime, err := c.Times.FormatISO(it.DepartureTime)
	if err != nil {
		return "", models.ErrTimestamp("departureTime", it.DepartureTime)
	}
	arrTime, err := c.Times.FormatISO(it.ArrivalTime)
	if err != nil {
		return "", models.ErrTimestamp("arrivalTime", it.ArrivalTime)
	}

	dep := SpellStation(it.DepartureStation)
	arr := SpellStation(it.ArrivalStation)

	var b strings.Builder

	if reroute != nil {
		if !models.Meaningful(reroute.DepartureStation) {
			return "", models.ErrMissing("reroutedDepartureStation")
		}
		if !models.Meaningful(reroute.ArrivalStation) {
			return "", models.ErrMissing("reroutedArrivalStation")
		}
		b.WriteString("Flight ")
		b.WriteString(SpellStation(reroute.DepartureStation))
		b.WriteString(" to ")
		b.WriteString(SpellStation(reroute.ArrivalStation))
		b.WriteString(" has been re-routed. The flight now departs from ")
		b.WriteString(dep)
		b.WriteString(" at ")
		b.WriteString(depTime)
		b.WriteString(", and arrives ")
		b.WriteString(arr)
		b.WriteString(" at ")
		b.WriteString(arrTime)
	} else {
		b.WriteString("Departs from ")
		b.WriteString(dep)
		b.WriteString(" at ")
		b.WriteString(depTime)
		b.WriteString(", arrives ")
		b.WriteString(arr)
		b.WriteString(" at ")
		b.WriteString(arrTime)
	}

	b.WriteString(DayOffsetClause(dayOffset))

	clause, err := StopsClause(stops)
	if err != nil {
		return "", err
	}
	b.WriteString(", ")
	b.WriteString(clause)
	b.WriteString(".")

	return b.String(), nil
}

// DayOffsetClause returns ", next day", ", N days later" or "" for offsets <= 0.
func DayOffsetClause(dayOffset int) string {
	switch {
	case dayOffset <= 0:
		return ""
	case dayOffset == 1:
		return ", next day"
	default:
		return ", " + strconv.Itoa(dayOffset) + " days later"
	}
}

// StopsClause describes each stop in flight order. N stops are joined by
// N-1 separators, with "and" before the last one once there are three or more.
func StopsClause(stops []models.Stop) (string, error) {
	if len(stops) == 0 {
		return "nonstop", nil
	}

	var b strings.Builder
	last := len(stops) - 1
	for i, stop := range stops {
		if stop.ArrivalStation == "" {
			return "", models.ErrStop(i, "arrival station is required")
		}

		if stop.IsStopover {
			b.WriteString("with a stop in ")
		} else {
			b.WriteString("with a layover in ")
		}
		b.WriteString(SpellStation(stop.ArrivalStation))

		if stop.IsLayover() && stop.Duration != "" {
			b.WriteString(", for ")
			b.WriteString(stop.Duration)
		}

		switch {
		case i == last:
		case i == last-1 && len(stops) >= 3:
			b.WriteString(", and ")
		default:
			b.WriteString(", ")
		}
	}
	return b.String(), nil
}
