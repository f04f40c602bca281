package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Profile holds default settings read from a JSONC file.
// Values given on the command line take precedence.
type Profile struct {
	Alphabet  string `json:"alphabet"`
	Strategy  string `json:"strategy"`
	OnInvalid string `json:"on-invalid"`
	KeyFile   string `json:"key-file"`
}

// LoadProfile reads a JSONC profile. A relative key-file is resolved against the profile's directory.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %q: %w", path, err)
	}

	var profile Profile
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &profile); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %q: %w", path, err)
	}

	if profile.KeyFile != "" && !filepath.IsAbs(profile.KeyFile) {
		profile.KeyFile = filepath.Join(filepath.Dir(path), profile.KeyFile)
	}

	return profile, nil
}

// ApplyProfile fills empty settings from the configured profile and revalidates.
func (c *Config) ApplyProfile() error {
	if c.Profile == "" {
		return nil
	}

	profile, err := LoadProfile(c.Profile)
	if err != nil {
		return err
	}

	fill(&c.Alphabet, profile.Alphabet)
	fill(&c.Strategy, profile.Strategy)
	fill(&c.OnInvalid, profile.OnInvalid)

	if c.Key.String == "" {
		fill(&c.Key.File, profile.KeyFile)
	}

	if err := c.Validate(*c); err != nil {
		return err
	}

	return c.requireKey()
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
