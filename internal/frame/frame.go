// Package frame renders the flight main frame: structured data, the visually
// hidden narrative, visible departure/arrival blocks and the segment slot.
package frame

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mobil-koeln/flightframe/internal/models"
	"github.com/mobil-koeln/flightframe/internal/narrative"
)

// CSS classes used by the frame markup
const (
	ClassFrame     = "mainFrame"
	ClassHidden    = "util_displayHiddenVisually"
	ClassDeparture = "departure"
	ClassArrival   = "arrival"
	ClassTime      = "time"
	ClassStation   = "station"
	ClassRerouted  = "rerouted"
	ClassDayOffset = "dayOffset"
	ClassSegments  = "segments"
)

const structuredDataMIME = "application/ld+json"

// Options configures a render pass
type Options struct {
	Locale string
	// Children is markup for child flight segments, passed through opaque.
	Children string
}

// View is the result of one render pass
type View struct {
	Narrative      string
	StructuredData StructuredData
	DepartureTime  string
	ArrivalTime    string
	DayOffset      int
	Root           *html.Node
}

// HTML serializes the view tree
func (v *View) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, v.Root); err != nil {
		return "", fmt.Errorf("failed to render frame: %w", err)
	}
	return buf.String(), nil
}

// Render validates the itinerary and builds its view. Nothing is rendered
// for an invalid itinerary.
func Render(it *models.Itinerary, opts Options) (*View, error) {
	if it == nil {
		return nil, models.ErrMissing("itinerary")
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}

	dayOffset, err := narrative.DateDifference(it.DepartureTime, it.ArrivalTime)
	if err != nil {
		return nil, err
	}

	reroute := it.Reroute()
	composer := narrative.NewComposer(opts.Locale)
	summary, err := composer.Compose(it, reroute, it.Stops, dayOffset)
	if err != nil {
		return nil, err
	}
	depTime, err := composer.Times.FormatISO(it.DepartureTime)
	if err != nil {
		return nil, models.ErrTimestamp("departureTime", it.DepartureTime)
	}
	arrTime, err := composer.Times.FormatISO(it.ArrivalTime)
	if err != nil {
		return nil, models.ErrTimestamp("arrivalTime", it.ArrivalTime)
	}

	v := &View{
		Narrative:      summary,
		StructuredData: NewStructuredData(it, summary),
		DepartureTime:  depTime,
		ArrivalTime:    arrTime,
		DayOffset:      dayOffset,
	}

	root := element(atom.Div, "class", ClassFrame)

	ld, err := v.StructuredData.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode structured data: %w", err)
	}
	script := element(atom.Script, "type", structuredDataMIME)
	script.AppendChild(text(string(ld)))
	root.AppendChild(script)

	hidden := element(atom.Div, "class", ClassHidden)
	hidden.AppendChild(text(summary))
	root.AppendChild(hidden)

	depBlock := endpoint(ClassDeparture, it.DepartureTime, depTime, it.DepartureStation, reroutedStation(reroute, true))
	root.AppendChild(depBlock)

	arrBlock := endpoint(ClassArrival, it.ArrivalTime, arrTime, it.ArrivalStation, reroutedStation(reroute, false))
	if dayOffset > 0 {
		badge := element(atom.Sup, "class", ClassDayOffset)
		badge.AppendChild(text(fmt.Sprintf("+%d", dayOffset)))
		// The badge follows the time element
		arrBlock.InsertBefore(badge, arrBlock.FirstChild.NextSibling)
	}
	root.AppendChild(arrBlock)

	segments := element(atom.Div, "class", ClassSegments)
	slot := &html.Node{Type: html.ElementNode, Data: "slot", DataAtom: atom.Lookup([]byte("slot"))}
	if strings.TrimSpace(opts.Children) != "" {
		children, err := parseChildren(opts.Children)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			slot.AppendChild(c)
		}
	}
	segments.AppendChild(slot)
	root.AppendChild(segments)

	v.Root = root
	return v, nil
}

// endpoint builds a departure or arrival block. A rerouted station is struck
// through ahead of the station actually flown.
func endpoint(class, iso, formatted, station, rerouted string) *html.Node {
	block := element(atom.Div, "class", class, "aria-hidden", "true")

	t := element(atom.Time, "class", ClassTime, "datetime", iso)
	t.AppendChild(text(formatted))
	block.AppendChild(t)

	st := element(atom.Span, "class", ClassStation)
	if rerouted != "" {
		s := element(atom.S, "class", ClassRerouted)
		s.AppendChild(text(rerouted))
		st.AppendChild(s)
		st.AppendChild(text(" "))
	}
	st.AppendChild(text(station))
	block.AppendChild(st)

	return block
}

func reroutedStation(r *models.Reroute, departure bool) string {
	if r == nil {
		return ""
	}
	if departure {
		return r.DepartureStation
	}
	return r.ArrivalStation
}

func parseChildren(markup string) ([]*html.Node, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse segment markup: %w", err)
	}
	return nodes, nil
}

// element creates an element node; attrs are key/value pairs
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
