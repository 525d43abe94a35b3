// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package website_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carvel.dev/yamlmarkup/pkg/website"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(redirect bool) http.Handler {
	return website.NewServer(website.ServerOpts{
		RedirectToHTTPS: redirect,
		ParseFunc: func(data []byte) ([]byte, error) {
			if strings.Contains(string(data), "bad") {
				return nil, fmt.Errorf("cannot parse")
			}
			return []byte(`{"events":[]}`), nil
		},
		ErrorFunc: func(err error) ([]byte, error) {
			return json.Marshal(map[string]string{"errors": err.Error()})
		},
	}).Mux()
}

func TestParseEndpoint(t *testing.T) {
	mux := newTestServer(false)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("a: 1")))
	assert.Equal(t, `{"events":[]}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("bad")))
	assert.Equal(t, `{"errors":"cannot parse"}`, rec.Body.String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parse", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStaticAndExamples(t *testing.T) {
	mux := newTestServer(false)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "yamlmarkup playground")
	assert.Equal(t, "no-cache, private, max-age=0", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/playground.js", nil))
	assert.Equal(t, "application/javascript", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples", nil))

	var sets []website.Example
	var rawSets []struct {
		ID       string            `json:"id"`
		Examples []website.Example `json:"examples"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rawSets))
	require.Len(t, rawSets, 1)
	sets = rawSets[0].Examples

	var ids []string
	for _, example := range sets {
		ids = append(ids, example.ID)
		assert.Empty(t, example.Files, "Expected listing to omit file contents")
	}
	assert.Equal(t, []string{"documents", "mappings", "sequences", "typed"}, ids)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples/typed", nil))

	var example website.Example
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &example))
	assert.Equal(t, "Typed", example.DisplayName)
	require.Len(t, example.Files, 1)
	assert.Contains(t, example.Files[0].Content, "!!omap")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/examples/missing", nil))
	assert.Equal(t, `{"errors":"Did not find example: missing"}`, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParseRejectsLargeBodies(t *testing.T) {
	mux := newTestServer(false)

	body := strings.Repeat("a", website.MaxParseBytes+1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reading request body")
}

func TestRedirectToHTTPS(t *testing.T) {
	mux := newTestServer(true)

	req := httptest.NewRequest(http.MethodGet, "http://play.example.com/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://play.example.com/", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodPost, "http://play.example.com/parse", strings.NewReader("a: 1"))
	req.RemoteAddr = "10.0.0.1:1234"
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, `{"errors":"Expected HTTPS connection"}`, rec.Body.String())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "http://play.example.com/parse", strings.NewReader("a: 1"))
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, `{"events":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "ok", rec.Body.String())
}
