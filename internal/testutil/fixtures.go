package testutil

// Sample itinerary documents for tests

// SampleNonstopJSON is a same-day nonstop flight
const SampleNonstopJSON = `{
	"departureStation": "SEA",
	"departureTime": "2024-07-01T09:05:00-07:00",
	"arrivalStation": "PDX",
	"arrivalTime": "2024-07-01T10:10:00-07:00",
	"duration": 65,
	"flights": ["AS 123"]
}`

// SampleReroutedJSON is a flight rerouted from PDX-LAX to SEA-SFO
const SampleReroutedJSON = `{
	"departureStation": "SEA",
	"departureTime": "2024-07-01T09:05:00-07:00",
	"arrivalStation": "SFO",
	"arrivalTime": "2024-07-01T11:20:00-07:00",
	"duration": 135,
	"flights": ["AS 330"],
	"reroutedDepartureStation": "PDX",
	"reroutedArrivalStation": "LAX"
}`

// SampleMultiStopJSON is an overnight itinerary with a stopover and two layovers
const SampleMultiStopJSON = `{
	"departureStation": "SEA",
	"departureTime": "2024-07-01T22:15:00-07:00",
	"arrivalStation": "BOS",
	"arrivalTime": "2024-07-02T13:40:00-04:00",
	"duration": 745,
	"flights": ["AS 100", "AS 200", "AS 300"],
	"stops": [
		{"isStopover": true, "arrivalStation": "BOI"},
		{"isStopover": false, "arrivalStation": "ORD", "duration": "1h 10m"},
		{"isStopover": false, "arrivalStation": "JFK", "duration": "45m"}
	]
}`

// SampleItineraryListYAML holds two itineraries in YAML form
const SampleItineraryListYAML = `
- departureStation: SEA
  departureTime: "2024-07-01T09:05:00-07:00"
  arrivalStation: PDX
  arrivalTime: "2024-07-01T10:10:00-07:00"
  duration: 65
  flights: ["AS 123"]
- departureStation: ANC
  departureTime: "2024-07-01T23:30:00-08:00"
  arrivalStation: HNL
  arrivalTime: "2024-07-03T04:15:00-10:00"
  duration: 1845
  flights: ["AS 871"]
  stops:
    - isStopover: false
      arrivalStation: SEA
      duration: 2h
`

// SampleInvalidJSON is missing its arrival station
const SampleInvalidJSON = `{
	"departureStation": "SEA",
	"departureTime": "2024-07-01T09:05:00-07:00",
	"arrivalTime": "2024-07-01T10:10:00-07:00",
	"flights": ["AS 123"]
}`
