package frame

import (
	"encoding/json"
	"fmt"

	"github.com/mobil-koeln/flightframe/internal/models"
)

const schemaContext = "http://schema.org"

// Airport is a schema.org Airport reference
type Airport struct {
	Type     string `json:"@type"`
	IATACode string `json:"iataCode"`
}

// StructuredData is the schema.org Flight annotation embedded in the frame
type StructuredData struct {
	Context                 string  `json:"@context"`
	Type                    string  `json:"@type"`
	DepartureTime           string  `json:"departureTime"`
	ArrivalTime             string  `json:"arrivalTime"`
	EstimatedFlightDuration string  `json:"estimatedFlightDuration"`
	Name                    string  `json:"name"`
	ArrivalAirport          Airport `json:"arrivalAirport"`
	DepartureAirport        Airport `json:"departureAirport"`
	Description             string  `json:"description"`
}

// NewStructuredData builds the annotation for an itinerary and its narrative
func NewStructuredData(it *models.Itinerary, description string) StructuredData {
	return StructuredData{
		Context:                 schemaContext,
		Type:                    "Flight",
		DepartureTime:           it.DepartureTime,
		ArrivalTime:             it.ArrivalTime,
		EstimatedFlightDuration: ISODuration(it.Duration),
		Name:                    it.FlightLabel(),
		ArrivalAirport:          Airport{Type: "Airport", IATACode: it.ArrivalStation},
		DepartureAirport:        Airport{Type: "Airport", IATACode: it.DepartureStation},
		Description:             description,
	}
}

// JSON encodes the annotation. HTML-significant characters are escaped so
// the result is safe inside a script element.
func (d StructuredData) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// ISODuration formats minutes as an ISO-8601 duration ("PT2H5M")
func ISODuration(minutes int) string {
	if minutes <= 0 {
		return "PT0M"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("PT%dM", m)
	case m == 0:
		return fmt.Sprintf("PT%dH", h)
	default:
		return fmt.Sprintf("PT%dH%dM", h, m)
	}
}
