package markertrack

import (
	"encoding/json"
)

type errorPayload struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Endpoint string `json:"endpoint"`
	Format   string `json:"format"`
	Message  string `json:"message"`
}

func buildErrorPayload(endpoint, format, msg string) []byte {
	if format == "xml" {
		return []byte("<Error><Endpoint>" + endpoint + "</Endpoint><Message>" + xmlEscapeError(msg) + "</Message></Error>")
	}
	b, _ := json.Marshal(errorPayload{Error: errorBody{Endpoint: endpoint, Format: format, Message: msg}})
	return b
}

func xmlEscapeError(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
