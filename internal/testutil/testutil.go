package testutil

import (
	"errors"
	"strings"
	"testing"
)

// AssertEqual checks if two values are equal
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// AssertNil checks if error is nil
func AssertNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError checks if error is not nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}

// AssertErrorIs checks that err matches target via errors.Is
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error matching %v but got nil", target)
	}
	if !errors.Is(err, target) {
		t.Errorf("got error %v, want it to match %v", err, target)
	}
}

// AssertContains checks if string contains substring
func AssertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("got %q, want it to contain %q", got, want)
	}
}

// AssertNotContains checks if string does not contain substring
func AssertNotContains(t *testing.T, got, notWant string) {
	t.Helper()
	if strings.Contains(got, notWant) {
		t.Errorf("got %q, want it to not contain %q", got, notWant)
	}
}

// AssertCount checks how many times substr occurs in s
func AssertCount(t *testing.T, s, substr string, want int) {
	t.Helper()
	if got := strings.Count(s, substr); got != want {
		t.Errorf("got %d occurrences of %q in %q, want %d", got, substr, s, want)
	}
}

// AssertTrue checks if condition is true
func AssertTrue(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Error("expected true but got false")
	}
}

// AssertFalse checks if condition is false
func AssertFalse(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Error("expected false but got true")
	}
}

// AssertLen checks if slice has expected length
func AssertLen[T any](t *testing.T, items []T, want int) {
	t.Helper()
	got := len(items)
	if got != want {
		t.Errorf("got length %d, want %d", got, want)
	}
}
