package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"apod-wallpaper/models"
	"apod-wallpaper/utils"
)

const apodPath = "/planetary/apod"

// maxErrorBody bounds how much of a failed response is kept for the error message
const maxErrorBody = 4096

// APODService handles NASA APOD API operations
// Implements APODServiceInterface
type APODService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewAPODService creates a new APODService instance
func NewAPODService(client *http.Client, baseURL, apiKey string) *APODService {
	if client == nil {
		client = http.DefaultClient
	}
	return &APODService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Ensure APODService implements APODServiceInterface
var _ APODServiceInterface = (*APODService)(nil)

// FetchAPOD requests the Astronomy Picture of the Day record.
// Non-200 responses return an *HTTPStatusError carrying the status code and body.
func (s *APODService) FetchAPOD(ctx context.Context, date string) (*models.APOD, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	if date != "" {
		params.Set("date", date)
	}
	endpoint := s.baseURL + apodPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create apod request: %w", err)
	}

	utils.LogDebug("GET %s%s (date=%q)", s.baseURL, apodPath, date)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request apod: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{
			Stage:      "fetch",
			URL:        s.baseURL + apodPath,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var apod models.APOD
	if err := json.NewDecoder(resp.Body).Decode(&apod); err != nil {
		return nil, fmt.Errorf("failed to decode apod response: %w", err)
	}

	if err := validateAPOD(&apod); err != nil {
		return nil, err
	}

	log.Printf("✓ APOD fetched: %s (%s)", apod.Title, apod.Date)
	return &apod, nil
}

func validateAPOD(apod *models.APOD) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", apod.Title},
		{"date", apod.Date},
		{"explanation", apod.Explanation},
		{"url", apod.URL},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if strings.EqualFold(apod.MediaType, "video") {
		return fmt.Errorf("%w: apod for %s is a %s (%s)", ErrUnsupportedMedia, apod.Date, apod.MediaType, apod.URL)
	}
	return nil
}
