package config

// ServerConfig contains the bridge server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// TrackingConfig contains every tunable of the marker tracking engine.
// A TrackingConfig is constructed once (loader or Default), validated, and
// then treated as immutable; runtime changes replace the whole value.
type TrackingConfig struct {
	// Animation of fix-to-fix movement
	EnableAnimation     bool  `yaml:"enableAnimation"`
	AnimationDurationMs int64 `yaml:"animationDurationMs" validate:"gt=0"`
	AnimateHeading      bool  `yaml:"animateHeading"`

	// Dead-reckoning beyond the newest fix
	EnablePrediction   bool  `yaml:"enablePrediction"`
	PredictionWindowMs int64 `yaml:"predictionWindowMs" validate:"gte=0"`

	// Liveness thresholds; an ExpiredThresholdMs of 0 disables expiry
	StaleThresholdMs   int64 `yaml:"staleThresholdMs" validate:"gt=0"`
	OfflineThresholdMs int64 `yaml:"offlineThresholdMs" validate:"gt=0"`
	ExpiredThresholdMs int64 `yaml:"expiredThresholdMs" validate:"gte=0"`

	// Stationary detection
	StationarySpeedThreshold float64 `yaml:"stationarySpeedThreshold" validate:"gte=0"`
	StationaryDurationMs     int64   `yaml:"stationaryDurationMs" validate:"gt=0"`

	// Breadcrumb trails
	EnableTrail                 bool    `yaml:"enableTrail"`
	MaxTrailPoints              int     `yaml:"maxTrailPoints" validate:"gt=0"`
	MinTrailPointDistanceMeters float64 `yaml:"minTrailPointDistanceMeters" validate:"gte=0"`
	TrailGradient               bool    `yaml:"trailGradient"`
}

// Profile is a named TrackingConfig override so one deployment can track
// different entity classes (vehicles, drones, devices) with different tuning.
type Profile struct {
	Name     string         `yaml:"name" validate:"required"`
	Tracking TrackingConfig `yaml:"tracking"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Tracking TrackingConfig `yaml:"tracking"`
	Profiles []Profile      `yaml:"profiles"`
}
