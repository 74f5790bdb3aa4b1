package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"goindia/internal/models/response_models"
	"goindia/pkg/utils"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org"

type WeatherServiceInterface interface {
	CurrentWeather(ctx context.Context, city string) (*response_models.WeatherReport, error)
}

// WeatherService reads current conditions and the air quality index from
// OpenWeatherMap. Any upstream failure surfaces as ErrWeatherUnavailable;
// a missing AQI alone does not fail the report.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: defaultWeatherBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func NewWeatherServiceWith(apiKey, baseURL string, client *http.Client) WeatherServiceInterface {
	return &WeatherService{apiKey: apiKey, baseURL: baseURL, client: client}
}

type currentWeatherPayload struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Name string `json:"name"`
}

type airPollutionPayload struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

func (s *WeatherService) CurrentWeather(ctx context.Context, city string) (*response_models.WeatherReport, error) {
	if strings.TrimSpace(city) == "" {
		return nil, utils.ErrInvalidInput
	}
	if s.apiKey == "" {
		return nil, utils.ErrWeatherUnavailable
	}

	weatherURL := fmt.Sprintf("%s/data/2.5/weather?q=%s&units=metric&appid=%s",
		s.baseURL, url.QueryEscape(city+",IN"), url.QueryEscape(s.apiKey))

	var current currentWeatherPayload
	if err := s.getJSON(ctx, weatherURL, &current); err != nil {
		log.Printf("Weather lookup for %q failed: %v", city, err)
		return nil, utils.ErrWeatherUnavailable
	}

	report := &response_models.WeatherReport{
		City:      defaultString(current.Name, city),
		TempC:     current.Main.Temp,
		Humidity:  current.Main.Humidity,
		FetchedAt: utils.FormatRFC3339IST(time.Now()),
	}
	if len(current.Weather) > 0 {
		report.Condition = current.Weather[0].Main
		report.Description = current.Weather[0].Description
	}

	pollutionURL := fmt.Sprintf("%s/data/2.5/air_pollution?lat=%f&lon=%f&appid=%s",
		s.baseURL, current.Coord.Lat, current.Coord.Lon, url.QueryEscape(s.apiKey))

	var pollution airPollutionPayload
	if err := s.getJSON(ctx, pollutionURL, &pollution); err != nil {
		log.Printf("AQI lookup for %q failed: %v", city, err)
	} else if len(pollution.List) > 0 {
		report.AQI = pollution.List[0].Main.AQI
	}

	return report, nil
}

func (s *WeatherService) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
