package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goindia/pkg/utils"
)

func weatherTestServer(t *testing.T, failPollution bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"coord": {"lat": 28.61, "lon": 77.21},
			"weather": [{"main": "Haze", "description": "smoky haze"}],
			"main": {"temp": 34.2, "humidity": 58},
			"name": "New Delhi"
		}`))
	})
	mux.HandleFunc("/data/2.5/air_pollution", func(w http.ResponseWriter, r *http.Request) {
		if failPollution {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": [{"main": {"aqi": 4}}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCurrentWeather(t *testing.T) {
	t.Parallel()

	server := weatherTestServer(t, false)
	svc := NewWeatherServiceWith("test-key", server.URL, &http.Client{Timeout: time.Second})

	report, err := svc.CurrentWeather(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("CurrentWeather() error = %v", err)
	}

	if report.City != "New Delhi" {
		t.Fatalf("City = %q", report.City)
	}
	if report.TempC != 34.2 || report.Humidity != 58 {
		t.Fatalf("conditions = %v C, %d%%", report.TempC, report.Humidity)
	}
	if report.Condition != "Haze" || report.Description != "smoky haze" {
		t.Fatalf("condition = %q / %q", report.Condition, report.Description)
	}
	if report.AQI != 4 {
		t.Fatalf("AQI = %d, want 4", report.AQI)
	}
	if report.FetchedAt == "" {
		t.Fatal("FetchedAt missing")
	}
}

func TestCurrentWeatherMissingAQIDoesNotFail(t *testing.T) {
	t.Parallel()

	server := weatherTestServer(t, true)
	svc := NewWeatherServiceWith("test-key", server.URL, &http.Client{Timeout: time.Second})

	report, err := svc.CurrentWeather(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("CurrentWeather() error = %v", err)
	}
	if report.AQI != 0 {
		t.Fatalf("AQI = %d, want 0 when pollution lookup fails", report.AQI)
	}
}

func TestCurrentWeatherUpstreamFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	svc := NewWeatherServiceWith("test-key", server.URL, &http.Client{Timeout: time.Second})
	if _, err := svc.CurrentWeather(context.Background(), "Atlantis"); !errors.Is(err, utils.ErrWeatherUnavailable) {
		t.Fatalf("error = %v, want ErrWeatherUnavailable", err)
	}
}

func TestCurrentWeatherWithoutKey(t *testing.T) {
	t.Parallel()

	svc := NewWeatherServiceWith("", "http://127.0.0.1:0", &http.Client{Timeout: time.Second})
	if _, err := svc.CurrentWeather(context.Background(), "Delhi"); !errors.Is(err, utils.ErrWeatherUnavailable) {
		t.Fatalf("error = %v, want ErrWeatherUnavailable", err)
	}
}

func TestCurrentWeatherEmptyCity(t *testing.T) {
	t.Parallel()

	svc := NewWeatherServiceWith("test-key", "http://127.0.0.1:0", &http.Client{Timeout: time.Second})
	if _, err := svc.CurrentWeather(context.Background(), ""); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
