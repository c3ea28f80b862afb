package formkit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{name: "SSE Accept header", headers: map[string]string{"Accept": "text/event-stream"}, expected: true},
		{name: "SSE Accept header with other values", headers: map[string]string{"Accept": "text/html, text/event-stream, */*"}, expected: true},
		{name: "signals query parameter", query: `?datastar={"flash":{}}`, expected: true},
		{name: "request header", headers: map[string]string{"Datastar-Request": "true"}, expected: true},
		{name: "regular request", headers: map[string]string{"Accept": "text/html"}, expected: false},
		{name: "no headers", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/flash"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, formkit.IsDataStar(req))
		})
	}
}
