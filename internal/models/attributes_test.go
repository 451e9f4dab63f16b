package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mobil-koeln/flightframe/internal/testutil"
)

func validItinerary() Itinerary {
	return Itinerary{
		DepartureStation: "SEA",
		DepartureTime:    "2024-07-01T09:05:00-07:00",
		ArrivalStation:   "PDX",
		ArrivalTime:      "2024-07-01T10:10:00-07:00",
		Duration:         65,
		Flights:          []string{"AS 123"},
	}
}

func TestValidate_Valid(t *testing.T) {
	it := validItinerary()
	testutil.AssertNil(t, it.Validate())

	it.Stops = []Stop{{IsStopover: true, ArrivalStation: "BOI"}}
	it.ReroutedDepartureStation = "PDX"
	it.ReroutedArrivalStation = "LAX"
	testutil.AssertNil(t, it.Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Itinerary)
		target    error
		attribute string
	}{
		{
			name:      "missing departure station",
			mutate:    func(it *Itinerary) { it.DepartureStation = "" },
			target:    ErrMissingRequiredAttribute,
			attribute: "departureStation",
		},
		{
			name:      "missing arrival station",
			mutate:    func(it *Itinerary) { it.ArrivalStation = "" },
			target:    ErrMissingRequiredAttribute,
			attribute: "arrivalStation",
		},
		{
			name:      "station code too long",
			mutate:    func(it *Itinerary) { it.ArrivalStation = "PDXX" },
			target:    ErrInvalidAttribute,
			attribute: "arrivalStation",
		},
		{
			name:      "no flights",
			mutate:    func(it *Itinerary) { it.Flights = nil },
			target:    ErrMissingRequiredAttribute,
			attribute: "flights",
		},
		{
			name:      "empty flights",
			mutate:    func(it *Itinerary) { it.Flights = []string{} },
			target:    ErrMissingRequiredAttribute,
			attribute: "flights",
		},
		{
			name:      "negative duration",
			mutate:    func(it *Itinerary) { it.Duration = -5 },
			target:    ErrInvalidAttribute,
			attribute: "duration",
		},
		{
			name:      "stop without station",
			mutate:    func(it *Itinerary) { it.Stops = []Stop{{IsStopover: true, ArrivalStation: "BOI"}, {Duration: "1h"}} },
			target:    ErrMalformedStopEntry,
			attribute: "stops[1].arrivalStation",
		},
		{
			name:      "reroute without arrival",
			mutate:    func(it *Itinerary) { it.ReroutedDepartureStation = "PDX" },
			target:    ErrMissingRequiredAttribute,
			attribute: "reroutedArrivalStation",
		},
		{
			name:      "reroute with undefined arrival",
			mutate:    func(it *Itinerary) { it.ReroutedDepartureStation = "PDX"; it.ReroutedArrivalStation = "undefined" },
			target:    ErrMissingRequiredAttribute,
			attribute: "reroutedArrivalStation",
		},
		{
			name:      "departure time without offset",
			mutate:    func(it *Itinerary) { it.DepartureTime = "2024-07-01T09:05:00" },
			target:    ErrInvalidTimestamp,
			attribute: "departureTime",
		},
		{
			name:      "garbage arrival time",
			mutate:    func(it *Itinerary) { it.ArrivalTime = "tomorrow" },
			target:    ErrInvalidTimestamp,
			attribute: "arrivalTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItinerary()
			tt.mutate(&it)

			err := it.Validate()
			testutil.AssertErrorIs(t, err, tt.target)

			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("expected *AttributeError, got %T", err)
			}
			testutil.AssertEqual(t, attrErr.Attribute, tt.attribute)
		})
	}
}

func TestValidate_UndefinedRerouteIsIgnored(t *testing.T) {
	it := validItinerary()
	it.ReroutedDepartureStation = "undefined"
	it.ReroutedArrivalStation = "undefined"
	testutil.AssertNil(t, it.Validate())
}

func TestLoadItineraries_SingleJSON(t *testing.T) {
	list, err := LoadItineraries([]byte(testutil.SampleMultiStopJSON))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, list, 1)

	it := list[0]
	testutil.AssertEqual(t, it.DepartureStation, "SEA")
	testutil.AssertEqual(t, it.ArrivalStation, "BOS")
	testutil.AssertEqual(t, it.Duration, 745)
	testutil.AssertLen(t, it.Flights, 3)
	testutil.AssertLen(t, it.Stops, 3)
	testutil.AssertTrue(t, it.Stops[0].IsStopover)
	testutil.AssertEqual(t, it.Stops[1].Duration, "1h 10m")
}

func TestLoadItineraries_JSONList(t *testing.T) {
	data := "[" + testutil.SampleNonstopJSON + "," + testutil.SampleReroutedJSON + "]"
	list, err := LoadItineraries([]byte(data))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, list, 2)
	testutil.AssertTrue(t, list[1].HasReroute())
}

func TestLoadItineraries_YAMLList(t *testing.T) {
	list, err := LoadItineraries([]byte(testutil.SampleItineraryListYAML))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, list, 2)
	testutil.AssertEqual(t, list[1].DepartureStation, "ANC")
	testutil.AssertLen(t, list[1].Stops, 1)
	testutil.AssertEqual(t, list[1].Stops[0].Duration, "2h")
	testutil.AssertFalse(t, list[1].Stops[0].IsStopover)
}

func TestLoadItineraries_YAMLSingle(t *testing.T) {
	data := `
departureStation: SEA
departureTime: "2024-07-01T09:05:00-07:00"
arrivalStation: PDX
arrivalTime: "2024-07-01T10:10:00-07:00"
flights: [AS 123]
`
	list, err := LoadItineraries([]byte(data))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, list, 1)
	testutil.AssertEqual(t, list[0].Flights[0], "AS 123")
}

func TestLoadItineraries_Errors(t *testing.T) {
	for _, data := range []string{"", "   ", "[]", "{not json", "- [unbalanced"} {
		if _, err := LoadItineraries([]byte(data)); err == nil {
			t.Errorf("LoadItineraries(%q) expected error", data)
		}
	}
}

func TestFromAttributes(t *testing.T) {
	it, err := FromAttributes(map[string]string{
		"departurestation":           "SEA",
		"departureTime":              "2024-07-01T09:05:00-07:00",
		"arrival-station":            "PDX",
		"ARRIVALTIME":                "2024-07-01T10:10:00-07:00",
		"duration":                   "65",
		"flights":                    `["AS 123","AS 456"]`,
		"stops":                      `[{"isStopover":false,"arrivalStation":"SFO","duration":"50m"}]`,
		"rerouted_departure_station": "undefined",
	})
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, it.DepartureStation, "SEA")
	testutil.AssertEqual(t, it.ArrivalStation, "PDX")
	testutil.AssertEqual(t, it.ArrivalTime, "2024-07-01T10:10:00-07:00")
	testutil.AssertEqual(t, it.Duration, 65)
	testutil.AssertLen(t, it.Flights, 2)
	testutil.AssertLen(t, it.Stops, 1)
	testutil.AssertEqual(t, it.Stops[0].ArrivalStation, "SFO")
	testutil.AssertFalse(t, it.HasReroute())
	testutil.AssertNil(t, it.Validate())
}

func TestFromAttributes_MatchesDocument(t *testing.T) {
	its, err := LoadItineraries([]byte(testutil.SampleMultiStopJSON))
	testutil.AssertNil(t, err)

	it, err := FromAttributes(map[string]string{
		"departureStation": "SEA",
		"departureTime":    "2024-07-01T22:15:00-07:00",
		"arrivalStation":   "BOS",
		"arrivalTime":      "2024-07-02T13:40:00-04:00",
		"duration":         "745",
		"flights":          "AS 100, AS 200, AS 300",
		"stops": `[
			{"isStopover": true, "arrivalStation": "BOI"},
			{"isStopover": false, "arrivalStation": "ORD", "duration": "1h 10m"},
			{"isStopover": false, "arrivalStation": "JFK", "duration": "45m"}
		]`,
	})
	testutil.AssertNil(t, err)

	if diff := cmp.Diff(its[0], *it); diff != "" {
		t.Errorf("FromAttributes mismatch (-document +attributes):\n%s", diff)
	}
}

func TestFromAttributes_CommaSeparatedFlights(t *testing.T) {
	it, err := FromAttributes(map[string]string{"flights": "AS 123, AS 456 ,"})
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, it.Flights, 2)
	testutil.AssertEqual(t, it.Flights[1], "AS 456")
}

func TestFromAttributes_AbsentStopsStayNil(t *testing.T) {
	it, err := FromAttributes(map[string]string{"stops": "undefined"})
	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, it.Stops == nil)
}

func TestFromAttributes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]string
		target error
	}{
		{"bad duration", map[string]string{"duration": "an hour"}, ErrInvalidAttribute},
		{"bad flights", map[string]string{"flights": `["AS 123"`}, ErrInvalidAttribute},
		{"bad stops", map[string]string{"stops": `{"arrivalStation":"SFO"}`}, ErrMalformedStopEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAttributes(tt.attrs)
			testutil.AssertErrorIs(t, err, tt.target)
		})
	}
}
