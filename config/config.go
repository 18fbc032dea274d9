package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL         = "https://api.nasa.gov"
	DefaultFontSize        = 18.0
	DefaultMaxWordsPerLine = 6
	DefaultTextAlpha       = 70
)

// ErrConfigMissing is matched by every MissingError via errors.Is
var ErrConfigMissing = errors.New("configuration missing")

// MissingError lists required environment variables that are unset or blank
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConfigMissing, strings.Join(e.Vars, ", "))
}

func (e *MissingError) Is(target error) bool {
	return target == ErrConfigMissing
}

// InvalidError reports an optional variable that is set but cannot be parsed
type InvalidError struct {
	Var   string
	Value string
	Err   error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// Config holds everything the pipeline reads from the environment
type Config struct {
	APIKey               string
	BaseURL              string
	SaveDirectory        string
	UpdatedSaveDirectory string
	FontPath             string
	FontSize             float64
	MaxWordsPerLine      int
	TextAlpha            uint8
	HTTPTimeout          time.Duration
}

// Load reads the configuration from environment variables and validates it.
// Required variables: NASA_API_KEY, SAVE_DIRECTORY, UPDATED_SAVE_DIRECTORY, FONT_PATH
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:               strings.TrimSpace(os.Getenv("NASA_API_KEY")),
		BaseURL:              strings.TrimSpace(os.Getenv("APOD_BASE_URL")),
		SaveDirectory:        strings.TrimSpace(os.Getenv("SAVE_DIRECTORY")),
		UpdatedSaveDirectory: strings.TrimSpace(os.Getenv("UPDATED_SAVE_DIRECTORY")),
		FontPath:             strings.TrimSpace(os.Getenv("FONT_PATH")),
		FontSize:             DefaultFontSize,
		MaxWordsPerLine:      DefaultMaxWordsPerLine,
		TextAlpha:            DefaultTextAlpha,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if v := strings.TrimSpace(os.Getenv("FONT_SIZE")); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err == nil && size <= 0 {
			err = errors.New("must be greater than 0")
		}
		if err != nil {
			return nil, &InvalidError{Var: "FONT_SIZE", Value: v, Err: err}
		}
		cfg.FontSize = size
	}

	if v := strings.TrimSpace(os.Getenv("MAX_WORDS_PER_LINE")); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = errors.New("must be greater than 0")
		}
		if err != nil {
			return nil, &InvalidError{Var: "MAX_WORDS_PER_LINE", Value: v, Err: err}
		}
		cfg.MaxWordsPerLine = n
	}

	if v := strings.TrimSpace(os.Getenv("TEXT_ALPHA")); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, &InvalidError{Var: "TEXT_ALPHA", Value: v, Err: err}
		}
		cfg.TextAlpha = uint8(n)
	}

	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d < 0 {
			err = errors.New("must not be negative")
		}
		if err != nil {
			return nil, &InvalidError{Var: "HTTP_TIMEOUT", Value: v, Err: err}
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required value is present
func (c *Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "NASA_API_KEY")
	}
	if c.SaveDirectory == "" {
		missing = append(missing, "SAVE_DIRECTORY")
	}
	if c.UpdatedSaveDirectory == "" {
		missing = append(missing, "UPDATED_SAVE_DIRECTORY")
	}
	if c.FontPath == "" {
		missing = append(missing, "FONT_PATH")
	}
	if len(missing) > 0 {
		return &MissingError{Vars: missing}
	}
	return nil
}
