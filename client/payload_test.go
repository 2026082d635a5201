package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventData(t *testing.T) {
	stream := ": keepalive\nevent: message\ndata: {\"a\":1}\n\nid: 2\ndata: {\"b\":\ndata: 2}\r\n\r\n"
	events := parseEventData(stream)
	assert.EqualValues(t, []string{`{"a":1}`, "{\"b\":\n2}"}, events)
}
