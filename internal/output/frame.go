package output

import (
	"fmt"
	"io"

	"github.com/mobil-koeln/flightframe/internal/frame"
	"github.com/mobil-koeln/flightframe/internal/models"
)

// FrameOptions configures the terminal frame output
type FrameOptions struct {
	Colors        *Colors
	ShowNarrative bool
}

// Summary is one line of narrative output
type Summary struct {
	Label string
	Text  string
	Err   error
}

// RenderFrame renders the visible part of a main frame.
//
// Layout:
//
//	Flight AS 123  1h 5m
//
//	┌  9:05 AM      SEA
//	├             layover in SFO, 1h 10m
//	└ 10:10 AM +1   PDX
func RenderFrame(w io.Writer, it *models.Itinerary, v *frame.View, opts FrameOptions) {
	if it == nil || v == nil {
		_, _ = fmt.Fprintln(w, "No itinerary data found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n", c.Flight("%s", it.FlightLabel()), c.Muted("%s", FormatDuration(it.Duration)))
	_, _ = fmt.Fprintln(w)

	reroute := it.Reroute()
	var reroutedDep, reroutedArr string
	if reroute != nil {
		reroutedDep, reroutedArr = reroute.DepartureStation, reroute.ArrivalStation
	}

	_, _ = fmt.Fprintf(w, "%s %s %s  %s\n",
		c.Muted("┌"),
		c.Time("%8s", v.DepartureTime),
		c.FormatDayOffset(0),
		stationLabel(c, it.DepartureStation, reroutedDep),
	)

	for _, stop := range it.Stops {
		_, _ = fmt.Fprintf(w, "%s %s  %s\n",
			c.Muted("├"),
			"            ",
			c.Stop("%s", describeStop(stop)),
		)
	}

	_, _ = fmt.Fprintf(w, "%s %s %s  %s\n",
		c.Muted("└"),
		c.Time("%8s", v.ArrivalTime),
		c.FormatDayOffset(v.DayOffset),
		stationLabel(c, it.ArrivalStation, reroutedArr),
	)

	if opts.ShowNarrative {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, c.Muted("%s", v.Narrative))
	}
}

// RenderSummaries renders one narrative per itinerary
func RenderSummaries(w io.Writer, summaries []Summary, opts FrameOptions) {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(w, "No itineraries found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for i, s := range summaries {
		if len(summaries) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, c.Header("%s", s.Label))
		}
		if s.Err != nil {
			_, _ = fmt.Fprintln(w, c.Error("Error: %v", s.Err))
			continue
		}
		_, _ = fmt.Fprintln(w, s.Text)
	}
}

// FormatDuration formats minutes as "1h 5m"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func stationLabel(c *Colors, station, rerouted string) string {
	if rerouted == "" {
		return c.Station("%s", station)
	}
	return c.Rerouted("%s", rerouted) + " " + c.Station("%s", station)
}

func describeStop(s models.Stop) string {
	if s.IsStopover {
		return "stop in " + s.ArrivalStation
	}
	if s.Duration != "" {
		return "layover in " + s.ArrivalStation + ", " + s.Duration
	}
	return "layover in " + s.ArrivalStation
}
