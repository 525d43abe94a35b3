// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package website

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"path"
	"strings"
	"time"
)

// MaxParseBytes bounds the size of a YAML document accepted by /parse.
const MaxParseBytes = 1 << 20

type ServerOpts struct {
	ListenAddr      string
	RedirectToHTTPS bool

	// ParseFunc turns posted YAML into the JSON response body.
	ParseFunc func([]byte) ([]byte, error)
	// ErrorFunc renders any failure as a response body.
	ErrorFunc func(error) ([]byte, error)
}

type Server struct {
	opts ServerOpts
}

type middleware func(http.HandlerFunc) http.HandlerFunc

func NewServer(opts ServerOpts) *Server {
	return &Server{opts}
}

func (s *Server) Mux() *http.ServeMux {
	static := []middleware{s.redirectToHTTPS, noCache}
	shared := []middleware{s.redirectToHTTPS, noCache, allowCORS}

	mux := http.NewServeMux()
	mux.HandleFunc("/", chain(s.indexHandler, static...))
	mux.HandleFunc("/js/", chain(s.assetHandler, static...))
	mux.HandleFunc("/examples", chain(s.exampleSetsHandler, shared...))
	mux.HandleFunc("/examples/", chain(s.exampleHandler, shared...))
	// POST responses are never cached
	mux.HandleFunc("/parse", chain(s.parseHandler, s.redirectToHTTPS, allowCORS))
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

func (s *Server) Run() error {
	server := &http.Server{
		Addr:              s.opts.ListenAddr,
		Handler:           s.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Printf("Listening on http://%s\n", server.Addr)
	return server.ListenAndServe()
}

// chain applies middlewares so that the first one listed runs first.
func chain(handler http.HandlerFunc, middlewares ...middleware) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	s.write(w, []byte(Files["index.html"].Content))
}

func (s *Server) assetHandler(w http.ResponseWriter, r *http.Request) {
	file, found := Files[strings.TrimPrefix(r.URL.Path, "/")]
	if !found {
		http.NotFound(w, r)
		return
	}
	if contentType, ok := assetContentTypes[path.Ext(r.URL.Path)]; ok {
		w.Header().Set("Content-Type", contentType)
	}
	s.write(w, []byte(file.Content))
}

var assetContentTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

func (s *Server) exampleSetsHandler(w http.ResponseWriter, _ *http.Request) {
	listBytes, err := json.Marshal(exampleSets.listing())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.write(w, listBytes)
}

func (s *Server) exampleHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/examples/")

	example, found := exampleSets.find(id)
	if !found {
		s.fail(w, http.StatusNotFound, fmt.Errorf("Did not find example: %v", id))
		return
	}

	exampleBytes, err := json.Marshal(example)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.write(w, exampleBytes)
}

func (s *Server) parseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.fail(w, http.StatusMethodNotAllowed, fmt.Errorf("Expected POST request, but was %s", r.Method))
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxParseBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.fail(w, status, fmt.Errorf("Reading request body: %s", err))
		return
	}

	resp, err := s.opts.ParseFunc(data)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	s.write(w, resp)
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.write(w, []byte("ok"))
}

// fail logs err and responds with its rendering under the given status.
func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	log.Printf("website: %s", err)

	resp, renderErr := s.opts.ErrorFunc(err)
	if renderErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "rendering error: %s", renderErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.write(w, resp)
}

func (s *Server) write(w http.ResponseWriter, data []byte) {
	w.Write(data) // not fmt.Fprintf!
}

func (s *Server) redirectToHTTPS(next http.HandlerFunc) http.HandlerFunc {
	if !s.opts.RedirectToHTTPS {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r) || r.Header.Get("X-Forwarded-Proto") == "https" {
			next(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if r.Host == "" {
				s.fail(w, http.StatusBadRequest, fmt.Errorf("Expected non-empty Host header"))
				return
			}
			http.Redirect(w, r, "https://"+r.Host+r.URL.RequestURI(), http.StatusMovedPermanently)
		default:
			// the body may already have travelled in the clear
			s.fail(w, http.StatusForbidden, fmt.Errorf("Expected HTTPS connection"))
		}
	}
}

func isLoopback(r *http.Request) bool {
	clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
	return err == nil && clientIP == "127.0.0.1"
}

var noCacheHeaders = map[string]string{
	"Expires":         time.Unix(0, 0).Format(time.RFC1123),
	"Cache-Control":   "no-cache, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}

func noCache(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}
		next(w, r)
	}
}

func allowCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		next(w, r)
	}
}
