package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/flightframe/internal/cache"
	"github.com/mobil-koeln/flightframe/internal/frame"
	"github.com/mobil-koeln/flightframe/internal/models"
	"github.com/mobil-koeln/flightframe/internal/narrative"
	"github.com/mobil-koeln/flightframe/internal/output"
	"github.com/mobil-koeln/flightframe/internal/tui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flightframe",
	Short: "Render accessible flight itinerary frames",
	Long: `flightframe renders the main frame of a flight itinerary: a schema.org
structured-data block, a visually hidden narrative for screen readers and
the visible departure/arrival blocks.

Input is either an itinerary file (--file, JSON or YAML, one itinerary or a
list) or the itinerary attributes given as flags.

Quick Start:
  1. Read the narrative:     flightframe summary -f trip.json
  2. Render the HTML frame:  flightframe render -f trip.json
  3. Preview in terminal:    flightframe show -f trip.json --narrative
  4. Structured data only:   flightframe jsonld -f trip.json
  5. Interactive preview:    flightframe tui -f trips.yaml

Attribute flags:
  flightframe summary --departure-station SEA --departure-time 2024-07-01T09:05:00-07:00 \
    --arrival-station PDX --arrival-time 2024-07-01T10:10:00-07:00 --flights "AS 123"`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Global flags
var (
	flagFile    string
	flagJSON    bool
	flagColor   string
	flagLocale  string
	flagNoCache bool
)

// Command flags
var (
	flagChildren  string
	flagNarrative bool
	flagWatch     bool
)

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(jsonldCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Itinerary file (JSON or YAML, '-' for stdin)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", narrative.DefaultLocale, "Locale for displayed times (e.g. en-US, en-GB)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable render caching")
	registerAttributeFlags(rootCmd)

	renderCmd.Flags().StringVar(&flagChildren, "children", "", "File with child segment markup for the segments slot")

	showCmd.Flags().BoolVarP(&flagNarrative, "narrative", "n", false, "Print the screen-reader narrative below the frame")
	showCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: re-render when --file changes")
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the accessible narrative",
	Long: `Print the sentence a screen reader announces for each itinerary.

Examples:
  flightframe summary -f trip.json
  flightframe summary -f trips.yaml --json
  flightframe summary -f trip.json --locale en-GB`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the HTML main frame",
	Long: `Print the HTML fragment of the main frame for each itinerary.

Child flight segments are inserted into the segments slot from --children.
Rendered fragments are cached; use --no-cache to bypass the cache.

Examples:
  flightframe render -f trip.json
  flightframe render -f trip.json --children segments.html
  flightframe render -f trip.json --json`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview the frame in the terminal",
	Long: `Show the visible part of the frame in the terminal. Rerouted stations
are crossed out and the arrival day offset is shown next to the time.

Watch Mode:
  --watch, -w            Re-render whenever the --file changes (full-screen mode)

Examples:
  flightframe show -f trip.json
  flightframe show -f trip.json --narrative
  flightframe show -f trip.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var jsonldCmd = &cobra.Command{
	Use:   "jsonld",
	Short: "Print the schema.org structured data",
	Long: `Print the schema.org Flight annotation embedded in the frame.

Examples:
  flightframe jsonld -f trip.json`,
	Args: cobra.NoArgs,
	RunE: runJSONLD,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive previewer",
	Long: `Launch the interactive previewer over an itinerary file.

Navigation:
  j/k or ↑/↓   Move between itineraries
  Tab          Switch between frame and HTML
  q            Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the render cache",
	Long: `Manage the on-disk cache of rendered frames.

Expired entries are pruned automatically whenever the cache is opened.

Examples:
  flightframe cache clear
  flightframe cache prune`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached frame",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cached frames",
	Args:  cobra.NoArgs,
	RunE:  runCachePrune,
}

func runSummary(cmd *cobra.Command, args []string) error {
	its, _, err := loadInput(cmd)
	if err != nil {
		return err
	}

	composer := narrative.NewComposer(flagLocale)
	summaries := make([]output.Summary, 0, len(its))
	for i := range its {
		text, err := composer.Summary(&its[i])
		summaries = append(summaries, output.Summary{
			Label: itineraryLabel(&its[i]),
			Text:  text,
			Err:   err,
		})
	}

	if flagJSON {
		return printJSON(summariesJSON(summaries))
	}

	output.RenderSummaries(os.Stdout, summaries, output.FrameOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return firstError(summaries)
}

func runRender(cmd *cobra.Command, args []string) error {
	its, _, err := loadInput(cmd)
	if err != nil {
		return err
	}

	opts, err := frameOptions()
	if err != nil {
		return err
	}
	c := openCache()

	fragments := make([]string, 0, len(its))
	for i := range its {
		markup, err := frame.RenderHTML(c, &its[i], opts)
		if err != nil {
			return fmt.Errorf("%s: %w", itineraryLabel(&its[i]), err)
		}
		fragments = append(fragments, markup)
	}

	if flagJSON {
		return printJSON(fragments)
	}
	for _, f := range fragments {
		fmt.Println(f)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := frameOptions()
	if err != nil {
		return err
	}

	show := func() error {
		its, _, err := loadInput(cmd)
		if err != nil {
			return err
		}
		return showFrames(its, opts)
	}

	if flagWatch {
		if flagFile == "" || flagFile == "-" {
			return fmt.Errorf("--watch requires --file")
		}
		return runWatch(flagFile, show)
	}
	return show()
}

func showFrames(its []models.Itinerary, opts frame.Options) error {
	colors := output.NewColors(getColorMode())

	views := make([]*frame.View, 0, len(its))
	for i := range its {
		v, err := frame.Render(&its[i], opts)
		if err != nil {
			return fmt.Errorf("%s: %w", itineraryLabel(&its[i]), err)
		}
		views = append(views, v)
	}

	if flagJSON {
		out := make([]viewJSON, 0, len(views))
		for _, v := range views {
			j, err := newViewJSON(v)
			if err != nil {
				return err
			}
			out = append(out, j)
		}
		return printJSON(out)
	}

	for i, v := range views {
		if i > 0 {
			fmt.Println()
		}
		output.RenderFrame(os.Stdout, &its[i], v, output.FrameOptions{
			Colors:        colors,
			ShowNarrative: flagNarrative,
		})
	}
	return nil
}

func runJSONLD(cmd *cobra.Command, args []string) error {
	its, _, err := loadInput(cmd)
	if err != nil {
		return err
	}

	opts, err := frameOptions()
	if err != nil {
		return err
	}

	data := make([]frame.StructuredData, 0, len(its))
	for i := range its {
		v, err := frame.Render(&its[i], opts)
		if err != nil {
			return fmt.Errorf("%s: %w", itineraryLabel(&its[i]), err)
		}
		data = append(data, v.StructuredData)
	}

	if len(data) == 1 {
		return printJSON(data[0])
	}
	return printJSON(data)
}

func runTUI(cmd *cobra.Command, args []string) error {
	its, source, err := loadInput(cmd)
	if err != nil {
		return err
	}

	opts, err := frameOptions()
	if err != nil {
		return err
	}

	model := tui.New(its, opts, source)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, err := cache.NewDefault()
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := c.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared: %s\n", c.Dir())
	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	c, err := cache.NewDefault()
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	removed, err := c.Cleanup()
	if err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries from %s\n", removed, c.Dir())
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
