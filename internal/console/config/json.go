package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/medichannel/admincli/internal/flagx"
	"github.com/medichannel/admincli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so the file can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoragePath    string         `json:"storage_path"`
	PageSize       int            `json:"page_size"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. No flag means no JSON source; only fields present in the
// file override earlier sources.
func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	return nil
}
