package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting snapshot responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a snapshot response to JSON
func (rb *responseBuilder) BuildJSON(res *SnapshotResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}
