//go:build integration
// +build integration

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mobil-koeln/flightframe/internal/testutil"
)

var binaryPath string

// TestMain builds the binary before running tests
func TestMain(m *testing.M) {
	binaryPath = filepath.Join(os.TempDir(), "flightframe-test")
	build := exec.Command("go", "build", "-o", binaryPath, ".")
	if err := build.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(binaryPath)
	os.Exit(code)
}

func runCommand(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "XDG_CACHE_HOME="+t.TempDir())

	stdout, err := cmd.Output()
	stderr := ""
	exitCode := 0

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			stderr = string(exitErr.Stderr)
		}
	}

	return string(stdout), stderr, exitCode
}

func fixtureFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestCLI_Version(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "--version")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "flightframe version") {
		t.Errorf("Expected version output, got: %s", stdout)
	}
}

func TestCLI_Help(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "--help")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	for _, cmd := range []string{"summary", "render", "show", "jsonld", "tui"} {
		if !strings.Contains(stdout, cmd) {
			t.Errorf("Help should list %q command", cmd)
		}
	}
}

func TestCLI_Summary(t *testing.T) {
	path := fixtureFile(t, "trip.json", testutil.SampleNonstopJSON)

	stdout, stderr, exitCode := runCommand(t, "summary", "-f", path, "--color", "never")

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}
	want := "Departs from S E A at 9:05 AM, arrives P D X at 10:10 AM, nonstop."
	if strings.TrimSpace(stdout) != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
}

func TestCLI_SummaryFromFlags(t *testing.T) {
	stdout, stderr, exitCode := runCommand(t, "summary",
		"--departure-station", "SEA",
		"--departure-time", "2024-07-01T09:05:00-07:00",
		"--arrival-station", "PDX",
		"--arrival-time", "2024-07-01T10:10:00-07:00",
		"--flights", "AS 123",
		"--locale", "en-GB",
	)

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}
	if !strings.Contains(stdout, "at 9:05, arrives P D X at 10:10") {
		t.Errorf("Expected 24-hour times, got: %s", stdout)
	}
}

func TestCLI_SummaryJSON(t *testing.T) {
	path := fixtureFile(t, "trips.yaml", testutil.SampleItineraryListYAML)

	stdout, stderr, exitCode := runCommand(t, "summary", "-f", path, "--json")

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}

	var result []map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 summaries, got %d", len(result))
	}
}

func TestCLI_Render(t *testing.T) {
	path := fixtureFile(t, "trip.json", testutil.SampleReroutedJSON)
	children := fixtureFile(t, "segments.html", `<div class="segment">AS 330</div>`)

	stdout, stderr, exitCode := runCommand(t, "render", "-f", path, "--children", children)

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}
	for _, want := range []string{
		`<div class="mainFrame">`,
		`application/ld+json`,
		`<s class="rerouted">PDX</s>`,
		`<div class="segment">AS 330</div>`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestCLI_JSONLD(t *testing.T) {
	path := fixtureFile(t, "trip.json", testutil.SampleNonstopJSON)

	stdout, stderr, exitCode := runCommand(t, "jsonld", "-f", path)

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["@type"] != "Flight" {
		t.Errorf("Expected @type Flight, got %v", result["@type"])
	}
	if result["estimatedFlightDuration"] != "PT1H5M" {
		t.Errorf("Expected PT1H5M, got %v", result["estimatedFlightDuration"])
	}
}

func TestCLI_Show(t *testing.T) {
	path := fixtureFile(t, "trip.json", testutil.SampleMultiStopJSON)

	stdout, stderr, exitCode := runCommand(t, "show", "-f", path, "--color", "never", "--narrative")

	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", exitCode, stderr)
	}
	for _, want := range []string{"Flights AS 100, AS 200, AS 300", "stop in BOI", "+1", "next day"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestCLI_InvalidItinerary(t *testing.T) {
	path := fixtureFile(t, "bad.json", testutil.SampleInvalidJSON)

	_, stderr, exitCode := runCommand(t, "render", "-f", path)

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(stderr, "arrivalStation") {
		t.Errorf("Expected missing attribute in error, got: %s", stderr)
	}
}

func TestCLI_NoInput(t *testing.T) {
	_, stderr, exitCode := runCommand(t, "summary")

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(stderr, "no itinerary given") {
		t.Errorf("Expected usage hint, got: %s", stderr)
	}
}

func TestCLI_WatchRequiresFile(t *testing.T) {
	_, stderr, exitCode := runCommand(t, "show", "--watch", "--departure-station", "SEA")

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(stderr, "--watch requires --file") {
		t.Errorf("Expected watch error, got: %s", stderr)
	}
}

func TestCLI_CacheClear(t *testing.T) {
	path := fixtureFile(t, "trip.json", testutil.SampleNonstopJSON)
	cacheHome := t.TempDir()

	run := func(args ...string) (string, int) {
		cmd := exec.Command(binaryPath, args...)
		cmd.Env = append(os.Environ(), "XDG_CACHE_HOME="+cacheHome)
		out, err := cmd.Output()
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), exitErr.ExitCode()
		}
		return string(out), 0
	}

	if _, code := run("render", "-f", path); code != 0 {
		t.Fatalf("render exit code %d", code)
	}
	entries, _ := filepath.Glob(filepath.Join(cacheHome, "flightframe", "*.json"))
	if len(entries) != 1 {
		t.Fatalf("Expected 1 cached frame, got %d", len(entries))
	}

	stdout, code := run("cache", "clear")
	if code != 0 {
		t.Fatalf("cache clear exit code %d", code)
	}
	if !strings.Contains(stdout, "Cache cleared") {
		t.Errorf("Expected confirmation, got: %s", stdout)
	}
	entries, _ = filepath.Glob(filepath.Join(cacheHome, "flightframe", "*.json"))
	if len(entries) != 0 {
		t.Errorf("Expected empty cache, got %d entries", len(entries))
	}
}
