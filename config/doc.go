// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags
// plus relational checks (stale < offline < expired). The package supports
// multiple named tracking profiles and allows profile selection by name.
// All defaulting and range-checking happens here, at construction time;
// consumers receive a TrackingConfig that is safe to use as-is.
package config
