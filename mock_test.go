package fury

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
)

// recordedCall captures one transport invocation for assertions.
type recordedCall struct {
	method string
	path   string
	query  url.Values
	body   any
}

// recordingInvoker is a mock transport that records every invocation and
// optionally fails or fills the output value.
type recordingInvoker struct {
	calls   []recordedCall
	err     error
	respond func(out any)
}

func (r *recordingInvoker) Execute(_ context.Context, method, path string, query url.Values, body, out any) error {
	r.calls = append(r.calls, recordedCall{method: method, path: path, query: query, body: body})
	if r.err != nil {
		return r.err
	}
	if r.respond != nil && out != nil {
		r.respond(out)
	}
	return nil
}

// respondJSON builds a respond func that unmarshals the given JSON into
// the output value, mimicking a server response body.
func respondJSON(t *testing.T, raw string) func(out any) {
	t.Helper()
	return func(out any) {
		if err := json.Unmarshal([]byte(raw), out); err != nil {
			t.Fatalf("respond: %v", err)
		}
	}
}

// payloadJSON serializes the recorded request body for wire-shape checks.
func payloadJSON(t *testing.T, body any) string {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal recorded payload: %v", err)
	}
	return string(data)
}
