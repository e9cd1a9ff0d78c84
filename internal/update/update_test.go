package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/rly0nheart/knewkarma/releases/latest" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/vnd.github+json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		fmt.Fprint(w, `{"name":"Knew Karma 2.1.0","tag_name":"v2.1.0","body":"release notes"}`)
	}))
	defer srv.Close()

	orig := apiBaseURL
	apiBaseURL = srv.URL
	defer func() { apiBaseURL = orig }()

	release, err := Check(context.Background(), "rly0nheart/knewkarma", "knewkarma-test")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if release.TagName != "v2.1.0" {
		t.Errorf("TagName = %q", release.TagName)
	}
	if release.Body != "release notes" {
		t.Errorf("Body = %q", release.Body)
	}
}

func TestCheckNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	orig := apiBaseURL
	apiBaseURL = srv.URL
	defer func() { apiBaseURL = orig }()

	if _, err := Check(context.Background(), "nobody/nothing", "knewkarma-test"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestIsNewer(t *testing.T) {
	cases := []struct {
		tag     string
		current string
		want    bool
	}{
		{"v2.1.0", "2.0.0", true},
		{"v2.0.0", "2.0.0", false},
		{"2.0.0", "v2.0.0", false},
		{"", "2.0.0", false},
	}
	for _, tc := range cases {
		r := Release{TagName: tc.tag}
		if got := r.IsNewer(tc.current); got != tc.want {
			t.Errorf("IsNewer(tag=%q, current=%q) = %v, want %v", tc.tag, tc.current, got, tc.want)
		}
	}
}
