package models

import (
	"errors"
	"testing"
)

func TestValidSort(t *testing.T) {
	for _, s := range Sorts {
		if !ValidSort(s) {
			t.Errorf("%q should be a valid sort", s)
		}
	}
	for _, s := range []string{"", "spiciest", "TOP"} {
		if ValidSort(s) {
			t.Errorf("%q should not be a valid sort", s)
		}
	}
}

func TestValidTimeframe(t *testing.T) {
	for _, tf := range Timeframes {
		if !ValidTimeframe(tf) {
			t.Errorf("%q should be a valid timeframe", tf)
		}
	}
	if ValidTimeframe("fortnight") {
		t.Error("fortnight should not be a valid timeframe")
	}
}

func TestItemHelpers(t *testing.T) {
	item := Item{"id": "abc", "title": "hello", "score": float64(12)}

	if item.ID() != "abc" {
		t.Errorf("ID = %q", item.ID())
	}
	if item.String("title") != "hello" {
		t.Errorf("String(title) = %q", item.String("title"))
	}
	if item.String("score") != "" {
		t.Error("non-string fields must read as empty")
	}
	if item.String("missing") != "" {
		t.Error("absent fields must read as empty")
	}
	if (Item{}).ID() != "" {
		t.Error("empty item must have empty id")
	}
}

func TestFetchErrorUnwraps(t *testing.T) {
	err := &FetchError{URL: "https://www.reddit.com/.json", Status: 502, Reason: "bad gateway"}

	var fetchErr *FetchError
	if !errors.As(error(err), &fetchErr) {
		t.Fatal("errors.As failed on FetchError")
	}
	if fetchErr.Status != 502 {
		t.Errorf("Status = %d", fetchErr.Status)
	}
	if err.Error() == "" {
		t.Error("Error() must describe the failure")
	}
}
