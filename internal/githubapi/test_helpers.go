package githubapi

import (
	"context"
	"encoding/json"
	"io"
)

// MockDoer implements restDoer for tests. Each call is recorded, and the
// configured DoFunc supplies the response.
type MockDoer struct {
	DoFunc func(method, path string, body []byte, response interface{}) error
	Calls  []RecordedCall
}

// RecordedCall captures one request seen by the mock.
type RecordedCall struct {
	Method string
	Path   string
	Body   []byte
}

// DoWithContext implements restDoer.
func (m *MockDoer) DoWithContext(_ context.Context, method, path string, body io.Reader, response interface{}) error {
	var payload []byte
	if body != nil {
		payload, _ = io.ReadAll(body)
	}
	m.Calls = append(m.Calls, RecordedCall{Method: method, Path: path, Body: payload})
	if m.DoFunc == nil {
		return nil
	}
	return m.DoFunc(method, path, payload, response)
}

// RespondJSON decodes the given JSON document into the response target,
// mimicking what the go-gh REST client does with a 2xx body.
func RespondJSON(response interface{}, doc string) error {
	if response == nil {
		return nil
	}
	return json.Unmarshal([]byte(doc), response)
}
