package client

import (
	"bytes"
	"errors"
	"strings"
)

var errEmptyBody = errors.New("empty response body")

// extractPayload returns the JSON document carried by body. Servers that answer with an
// event stream despite Accept: application/json are tolerated: the last JSON data payload wins.
func extractPayload(contentType string, body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errEmptyBody
	}
	isStream := strings.Contains(strings.ToLower(contentType), "text/event-stream") ||
		bytes.HasPrefix(trimmed, []byte("event:")) ||
		bytes.HasPrefix(trimmed, []byte("data:"))
	if !isStream {
		return trimmed, nil
	}
	events := parseEventData(string(trimmed))
	for i := len(events) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(events[i])
		if strings.HasPrefix(candidate, "{") || strings.HasPrefix(candidate, "[") {
			return []byte(candidate), nil
		}
	}
	return nil, errors.New("event stream did not contain JSON payload")
}

// parseEventData returns data of each event in the stream
func parseEventData(stream string) []string {
	var events []string
	var data []string
	flush := func() {
		if len(data) > 0 {
			events = append(events, strings.Join(data, "\n"))
			data = nil
		}
	}
	for _, raw := range strings.Split(stream, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		if strings.TrimSpace(field) == "data" {
			data = append(data, strings.TrimPrefix(value, " "))
		}
	}
	flush()
	return events
}
