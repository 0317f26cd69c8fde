package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the TrackingConfig used when no file or profile overrides
// a value. These are also the thresholds applied to a fix that arrives
// before any configuration was supplied.
func Default() TrackingConfig {
	return TrackingConfig{
		EnableAnimation:             true,
		AnimationDurationMs:         1000,
		AnimateHeading:              true,
		EnablePrediction:            true,
		PredictionWindowMs:          2000,
		StaleThresholdMs:            10000,
		OfflineThresholdMs:          30000,
		ExpiredThresholdMs:          0,
		StationarySpeedThreshold:    0.5,
		StationaryDurationMs:        30000,
		EnableTrail:                 true,
		MaxTrailPoints:              50,
		MinTrailPointDistanceMeters: 5.0,
		TrailGradient:               true,
	}
}

// Validate checks relational rules the struct tags cannot express. A config
// that fails here must never reach the registry tick loop.
func (c TrackingConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.OfflineThresholdMs <= c.StaleThresholdMs {
		return fmt.Errorf("offlineThresholdMs (%d) must be greater than staleThresholdMs (%d)", c.OfflineThresholdMs, c.StaleThresholdMs)
	}
	if c.ExpiredThresholdMs != 0 && c.ExpiredThresholdMs <= c.OfflineThresholdMs {
		return fmt.Errorf("expiredThresholdMs (%d) must be 0 or greater than offlineThresholdMs (%d)", c.ExpiredThresholdMs, c.OfflineThresholdMs)
	}
	return nil
}

// LoadAppConfig loads and validates the application configuration from
// config.yml. Unmarshaling happens over a fully defaulted struct so fields
// omitted from the file keep their defaults.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{Tracking: Default()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 17181
	}

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Tracking.Validate(); err != nil {
		return AppConfig{}, err
	}
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if err := v.Struct(p); err != nil {
			return AppConfig{}, err
		}
		if err := p.Tracking.Validate(); err != nil {
			return AppConfig{}, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return cfg, nil
}

// UnmarshalYAML seeds each profile with the default tracking values before
// decoding, so profile entries only need to name the fields they override.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	type rawProfile Profile
	tmp := rawProfile{Tracking: Default()}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*p = Profile(tmp)
	return nil
}

// SelectProfile chooses a tracking profile by name; fallback to first
// profile; if none are defined, the top-level tracking section is used.
func (c AppConfig) SelectProfile(name string) TrackingConfig {
	if name != "" {
		for _, p := range c.Profiles {
			if p.Name == name {
				return p.Tracking
			}
		}
	}
	if len(c.Profiles) > 0 {
		return c.Profiles[0].Tracking
	}
	return c.Tracking
}
