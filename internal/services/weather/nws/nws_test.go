package nws

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zanzhit/camera_wall/internal/config"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
)

func testConfig(baseURL string) config.Weather {
	return config.Weather{
		BaseURL:   baseURL,
		UserAgent: "camera_wall-test",
		Timeout:   time.Second,
	}
}

func TestCurrentPeriod(t *testing.T) {
	mux := http.NewServeMux()

	var srvURL string
	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"properties": {
				"forecastHourly": "%s/gridpoints/BUF/1,2/forecast/hourly",
				"relativeLocation": {"properties": {"city": "Rochester", "state": "NY"}}
			}
		}`, srvURL)
	})
	mux.HandleFunc("/gridpoints/BUF/1,2/forecast/hourly", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"properties": {
				"periods": [
					{"temperature": 72, "isDaytime": true, "shortForecast": "Sunny"},
					{"temperature": 65, "isDaytime": false, "shortForecast": "Clear"}
				]
			}
		}`)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()
	srvURL = ts.URL

	c := New(testConfig(ts.URL))

	period, place, err := c.CurrentPeriod(43.1566, -77.6088)
	if err != nil {
		t.Fatalf("CurrentPeriod() error = %v", err)
	}

	if period.Temperature != 72 || !period.IsDaytime || period.ShortForecast != "Sunny" {
		t.Errorf("unexpected first period: %+v", period)
	}
	if place != "Rochester" {
		t.Errorf("place = %q, want %q", place, "Rochester")
	}
}

func TestCurrentPeriodGridLookupFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL))

	_, _, err := c.CurrentPeriod(43.1566, -77.6088)
	if err == nil {
		t.Fatal("CurrentPeriod() expected error, got nil")
	}
}

func TestCurrentPeriodNoPeriods(t *testing.T) {
	mux := http.NewServeMux()

	var srvURL string
	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties": {"forecastHourly": "%s/hourly"}}`, srvURL)
	})
	mux.HandleFunc("/hourly", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {"periods": []}}`)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()
	srvURL = ts.URL

	c := New(testConfig(ts.URL))

	_, _, err := c.CurrentPeriod(43.1566, -77.6088)
	if !errors.Is(err, errs.ErrNoForecast) {
		t.Fatalf("CurrentPeriod() error = %v, want %v", err, errs.ErrNoForecast)
	}
}

func TestCurrentPeriodMissingProperties(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL))

	_, _, err := c.CurrentPeriod(43.1566, -77.6088)
	if !errors.Is(err, errs.ErrNoForecast) {
		t.Fatalf("CurrentPeriod() error = %v, want %v", err, errs.ErrNoForecast)
	}
}
