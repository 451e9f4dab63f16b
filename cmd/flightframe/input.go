package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mobil-koeln/flightframe/internal/cache"
	"github.com/mobil-koeln/flightframe/internal/frame"
	"github.com/mobil-koeln/flightframe/internal/models"
	"github.com/mobil-koeln/flightframe/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// attributeFlags maps each attribute flag to its usage text. Flag names are
// the kebab-case attribute names accepted by models.FromAttributes.
var attributeFlags = []struct {
	name  string
	usage string
}{
	{"departure-station", "Departure station IATA code"},
	{"departure-time", "Departure time (RFC 3339 with offset)"},
	{"arrival-station", "Arrival station IATA code"},
	{"arrival-time", "Arrival time (RFC 3339 with offset)"},
	{"duration", "Total duration in minutes"},
	{"flights", "Flight numbers (JSON array or comma-separated)"},
	{"stops", "Stops as a JSON array"},
	{"rerouted-departure-station", "Originally scheduled departure station"},
	{"rerouted-arrival-station", "Originally scheduled arrival station"},
}

func registerAttributeFlags(cmd *cobra.Command) {
	for _, f := range attributeFlags {
		cmd.PersistentFlags().String(f.name, "", f.usage)
	}
}

// attributesFromFlags collects the attribute flags that were set
func attributesFromFlags(flags *pflag.FlagSet) (map[string]string, error) {
	attrs := make(map[string]string)
	for _, f := range attributeFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return nil, err
		}
		attrs[f.name] = v
	}
	return attrs, nil
}

// loadInput reads itineraries from --file or the attribute flags. The
// returned source names where they came from.
func loadInput(cmd *cobra.Command) ([]models.Itinerary, string, error) {
	attrs, err := attributesFromFlags(cmd.Flags())
	if err != nil {
		return nil, "", err
	}

	if flagFile != "" {
		if len(attrs) > 0 {
			return nil, "", errors.New("use either --file or attribute flags, not both")
		}
		its, err := readItineraryFile(flagFile)
		if err != nil {
			return nil, "", err
		}
		return its, flagFile, nil
	}

	if len(attrs) == 0 {
		return nil, "", errors.New("no itinerary given: use --file or the attribute flags (see --help)")
	}

	it, err := models.FromAttributes(attrs)
	if err != nil {
		return nil, "", err
	}
	return []models.Itinerary{*it}, "flags", nil
}

func readItineraryFile(path string) ([]models.Itinerary, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		// #nosec G304 -- path is supplied by the user on purpose
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read itineraries: %w", err)
	}

	its, err := models.LoadItineraries(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return its, nil
}

// frameOptions builds render options from the global and render flags
func frameOptions() (frame.Options, error) {
	opts := frame.Options{Locale: flagLocale}
	if flagChildren != "" {
		// #nosec G304 -- path is supplied by the user on purpose
		data, err := os.ReadFile(flagChildren)
		if err != nil {
			return opts, fmt.Errorf("failed to read children: %w", err)
		}
		opts.Children = string(data)
	}
	return opts, nil
}

// openCache returns the render cache with expired entries pruned, or nil
// when caching is off or the cache directory is unusable.
func openCache() frame.Cache {
	if flagNoCache {
		return nil
	}
	c, err := cache.NewDefault()
	if err != nil {
		return nil
	}
	_, _ = c.Cleanup()
	return c
}

// itineraryLabel names an itinerary in listings and errors
func itineraryLabel(it *models.Itinerary) string {
	route := it.DepartureStation + "-" + it.ArrivalStation
	if len(it.Flights) == 0 {
		return route
	}
	return route + " (" + it.FlightLabel() + ")"
}

type summaryJSON struct {
	Label   string `json:"label"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

func summariesJSON(summaries []output.Summary) []summaryJSON {
	out := make([]summaryJSON, 0, len(summaries))
	for _, s := range summaries {
		j := summaryJSON{Label: s.Label, Summary: s.Text}
		if s.Err != nil {
			j.Error = s.Err.Error()
		}
		out = append(out, j)
	}
	return out
}

// firstError returns the first failed summary so the exit status reflects it
func firstError(summaries []output.Summary) error {
	for _, s := range summaries {
		if s.Err != nil {
			return fmt.Errorf("%s: %w", s.Label, s.Err)
		}
	}
	return nil
}

type viewJSON struct {
	Narrative      string               `json:"narrative"`
	DepartureTime  string               `json:"departureTime"`
	ArrivalTime    string               `json:"arrivalTime"`
	DayOffset      int                  `json:"dayOffset"`
	StructuredData frame.StructuredData `json:"structuredData"`
	HTML           string               `json:"html"`
}

func newViewJSON(v *frame.View) (viewJSON, error) {
	markup, err := v.HTML()
	if err != nil {
		return viewJSON{}, err
	}
	return viewJSON{
		Narrative:      v.Narrative,
		DepartureTime:  v.DepartureTime,
		ArrivalTime:    v.ArrivalTime,
		DayOffset:      v.DayOffset,
		StructuredData: v.StructuredData,
		HTML:           markup,
	}, nil
}
