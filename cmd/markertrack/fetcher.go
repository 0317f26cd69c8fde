package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// fetcher handles fetching fix batches from URLs or local files.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a new fetcher for fix data
func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{},
	}
}

// fetch fetches one JSON fix batch from a URL or file path and returns the
// raw bytes. Supports both HTTP URLs and local file paths.
// Returns nil if urlOrPath is empty.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, nil
	}

	// Check if it's a local file path
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	// HTTP fetch
	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", urlOrPath, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
