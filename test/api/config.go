/*
Copyright 2026 the PetFriends E2E Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Credentials registered with the in-process fake when no remote service
// is configured.
const (
	fakeValidEmail      = "korg@petfriends.test"
	fakeValidPassword   = "welsh-corgi-pembroke"
	fakeInvalidEmail    = "nobody@petfriends.test"
	fakeInvalidPassword = "definitely-not-the-password"
)

type TestConfig struct {
	BaseURL          string
	ValidEmail       string
	ValidPassword    string
	InvalidEmail     string
	InvalidPassword  string
	ImagesDir        string
	RequestTimeout   time.Duration
	EventualTimeout  time.Duration
	PollInterval     time.Duration
	ValidateContract bool
	LogLevel         string
	LogRequests      bool
	LogResponses     bool
}

// UseFake reports whether the suites run against the in-process fake.
func (c *TestConfig) UseFake() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a remote service is configured without credentials.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()

	v.SetDefault("PETFRIENDS_BASE_URL", "")
	v.SetDefault("PETFRIENDS_IMAGES_DIR", defaultImagesDir())
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("EVENTUAL_TIMEOUT", 30*time.Second)
	v.SetDefault("POLL_INTERVAL", time.Second)
	v.SetDefault("VALIDATE_CONTRACT", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_REQUESTS", false)
	v.SetDefault("LOG_RESPONSES", false)

	v.AutomaticEnv()

	config := &TestConfig{
		BaseURL:          strings.TrimSuffix(v.GetString("PETFRIENDS_BASE_URL"), "/"),
		ValidEmail:       v.GetString("PETFRIENDS_VALID_EMAIL"),
		ValidPassword:    v.GetString("PETFRIENDS_VALID_PASSWORD"),
		InvalidEmail:     v.GetString("PETFRIENDS_INVALID_EMAIL"),
		InvalidPassword:  v.GetString("PETFRIENDS_INVALID_PASSWORD"),
		ImagesDir:        v.GetString("PETFRIENDS_IMAGES_DIR"),
		RequestTimeout:   v.GetDuration("REQUEST_TIMEOUT"),
		EventualTimeout:  v.GetDuration("EVENTUAL_TIMEOUT"),
		PollInterval:     v.GetDuration("POLL_INTERVAL"),
		ValidateContract: v.GetBool("VALIDATE_CONTRACT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogRequests:      v.GetBool("LOG_REQUESTS"),
		LogResponses:     v.GetBool("LOG_RESPONSES"),
	}

	if config.UseFake() {
		applyFakeCredentials(config)
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyFakeCredentials fills in any credential the environment left empty.
func applyFakeCredentials(config *TestConfig) {
	defaults := []struct {
		field *string
		value string
	}{
		{&config.ValidEmail, fakeValidEmail},
		{&config.ValidPassword, fakeValidPassword},
		{&config.InvalidEmail, fakeInvalidEmail},
		{&config.InvalidPassword, fakeInvalidPassword},
	}

	for _, d := range defaults {
		if *d.field == "" {
			*d.field = d.value
		}
	}
}

// defaultImagesDir locates the images shipped alongside this package, so the
// suites work from any working directory.
func defaultImagesDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "images"
	}

	return filepath.Join(filepath.Dir(file), "images")
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../.env",       // From test/api directory
		"../../../.env", // From test/contracts/consumer/petfriends directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		envVar string
		value  string
	}{
		{"PETFRIENDS_VALID_EMAIL", config.ValidEmail},
		{"PETFRIENDS_VALID_PASSWORD", config.ValidPassword},
		{"PETFRIENDS_INVALID_EMAIL", config.InvalidEmail},
		{"PETFRIENDS_INVALID_PASSWORD", config.InvalidPassword},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration for %s: %s. Please set these environment variables or add them to test/.env", config.BaseURL, strings.Join(missing, ", "))
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("invalid REQUEST_TIMEOUT %s (must be positive)", config.RequestTimeout)
	}

	if config.PollInterval <= 0 || config.EventualTimeout < config.PollInterval {
		return fmt.Errorf("invalid polling configuration: interval %s, timeout %s", config.PollInterval, config.EventualTimeout)
	}

	return nil
}
