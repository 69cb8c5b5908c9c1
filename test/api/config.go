/*
Copyright 2025-2026 the Bookstore QA Authors.

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
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the final fallback target when neither the override
// flag nor the environment provide one. It matches the address the local
// bookstore stub listens on.
const DefaultBaseURL = "http://localhost:3000"

// DefaultFallbackID is the conventionally-known existing resource id used
// when the service under test echoes the sentinel id 0 on create.
const DefaultFallbackID = 1

type TestConfig struct {
	BaseURL        string
	RequestTimeout time.Duration

	// StrictValidation selects the per-deployment assertion policy: a
	// strict service rejects invalid create payloads and allocates real
	// ids, a lenient one (the public demo) accepts anything and echoes
	// the sentinel id 0. A run asserts exactly one of the two.
	StrictValidation bool
	FallbackID       int

	LogRequests  bool
	LogResponses bool
}

var (
	configOnce sync.Once
	config     *TestConfig
)

// LoadTestConfig resolves configuration from the -base-url override, the
// environment and .env files. Resolution happens once per test process;
// every subsequent call returns the same immutable value.
func LoadTestConfig() *TestConfig {
	return LoadTestConfigWithOverride("")
}

// LoadTestConfigWithOverride is LoadTestConfig with an explicit base URL
// override, which takes priority over every other source.
func LoadTestConfigWithOverride(baseURLOverride string) *TestConfig {
	configOnce.Do(func() {
		loadEnvFile()

		config = &TestConfig{
			BaseURL:          resolveBaseURL(baseURLOverride),
			RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
			StrictValidation: getBoolWithDefault("BOOKSTORE_STRICT_VALIDATION", false),
			FallbackID:       getIntWithDefault("BOOKSTORE_FALLBACK_ID", DefaultFallbackID),
			LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
			LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
		}
	})

	return config
}

// resolveBaseURL picks the first non-empty source: explicit override,
// BOOKSTORE_BASE_URL, the legacy BASE_URL variable, then the default. The
// URL is not probed here; an unreachable target surfaces as transport
// failures in the scenarios themselves.
func resolveBaseURL(override string) string {
	sources := []string{
		override,
		os.Getenv("BOOKSTORE_BASE_URL"),
		os.Getenv("BASE_URL"),
	}

	for _, source := range sources {
		if source != "" {
			return source
		}
	}

	return DefaultBaseURL
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// getIntWithDefault gets an integer from environment variable or returns default.
func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
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
