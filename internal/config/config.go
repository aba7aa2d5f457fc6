package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the explorer
const (
	// EnvDataDir is the directory holding the city CSV exports
	EnvDataDir = "BIKESHARE_DATA_DIR"

	// EnvCatalog points to an optional HCL file mapping cities to files
	EnvCatalog = "BIKESHARE_CATALOG"

	// EnvLogLevel sets the log level (debug, info, warn, error)
	EnvLogLevel = "BIKESHARE_LOG_LEVEL"

	// EnvSeed fixes the raw data sampling seed (0 picks a random seed)
	EnvSeed = "BIKESHARE_SEED"
)

// DefaultDotEnvFile is read from the working directory when present
const DefaultDotEnvFile = ".env"

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the explorer configuration
type Config struct {
	// DataDir is the directory the default city files are resolved against
	DataDir string `json:"dataDir"`

	// CatalogPath is an optional HCL catalog overriding city files
	CatalogPath string `json:"catalogPath"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"logLevel"`

	// SampleSize is the number of raw rows shown per request
	SampleSize int `json:"sampleSize"`

	// Seed makes raw data sampling reproducible when non-zero
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:     ".",
		CatalogPath: "", // No catalog means default file names in DataDir
		LogLevel:    "warn",
		SampleSize:  5,
		Seed:        0,
	}
}

// ApplyEnv overrides fields with the non-empty variables returned by getenv
func (c *Config) ApplyEnv(getenv func(key string) string) error {
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := getenv(EnvCatalog); v != "" {
		c.CatalogPath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	return nil
}

// ApplyDotEnv overrides fields with the variables of a dotenv file. A
// missing file is not an error and the process environment is not modified.
func (c *Config) ApplyDotEnv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return c.ApplyEnv(func(key string) string {
		return values[key]
	})
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory must not be empty")
	}

	levelOK := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.LogLevel) == level {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return fmt.Errorf("invalid log level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive, got %d", c.SampleSize)
	}

	return nil
}
