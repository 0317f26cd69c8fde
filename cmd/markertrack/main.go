package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	lib "github.com/neildunlop/marker-tracking"
	"github.com/neildunlop/marker-tracking/config"
	"github.com/neildunlop/marker-tracking/geo"
	"github.com/neildunlop/marker-tracking/tracking"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "config file path (default config.yml)")
	profile := flag.String("profile", "", "tracking profile name from config.profiles[]")
	format := flag.String("format", "json", "json|xml")
	fixes := flag.String("fixes", "", "JSON array of fixes: URL or local file path")
	at := flag.Int64("at", 0, "render time, Unix milliseconds (default: newest fix timestamp)")
	centerLat := flag.Float64("centerLat", 0, "viewport center latitude")
	centerLon := flag.Float64("centerLon", 0, "viewport center longitude")
	zoom := flag.Float64("zoom", 12, "viewport zoom level")
	width := flag.Float64("width", 800, "viewport width in pixels")
	height := flag.Float64("height", 600, "viewport height in pixels")
	flag.Parse()

	lib.InitLogging()
	cfg := loadConfig(*configPath)

	bridge, err := lib.NewBridge(cfg, *profile)
	if err != nil {
		panic(err)
	}

	switch *mode {
	case "serve":
		bridge.StartServer()
		bridge.HandleGracefulShutdown()
	case "oneshot":
		if *fixes == "" {
			panic("oneshot mode requires -fixes")
		}
		raw, err := newFetcher().fetch(*fixes)
		if err != nil {
			panic(err)
		}
		var batch []tracking.Fix
		if err := json.Unmarshal(raw, &batch); err != nil {
			panic(fmt.Errorf("fixes must be a JSON array: %w", err))
		}
		for i, fix := range batch {
			if err := bridge.ApplyFix(fix); err != nil {
				log.Printf("fix %d rejected: %v", i, err)
			}
		}

		renderAt := *at
		if renderAt == 0 {
			renderAt = bridge.Registry.LatestFixEpochMs()
		}
		vp := geo.Viewport{
			CenterLat: *centerLat,
			CenterLon: *centerLon,
			Zoom:      *zoom,
			WidthPx:   *width,
			HeightPx:  *height,
		}
		fmt.Println(string(bridge.Snapshot(renderAt, vp, *format)))
	default:
		panic("unknown mode")
	}
}

// loadConfig reads the configured file; when no explicit path was given and
// no default file exists, the built-in defaults apply.
func loadConfig(path string) config.AppConfig {
	var (
		cfg config.AppConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadAppConfig(path)
	} else {
		cfg, err = config.LoadAppConfig()
		if err != nil {
			return config.AppConfig{
				Server:   config.ServerConfig{Port: 17181},
				Tracking: config.Default(),
			}
		}
	}
	if err != nil {
		panic(err)
	}
	return cfg
}
