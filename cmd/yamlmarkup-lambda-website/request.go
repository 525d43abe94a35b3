// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// CustomHostVariable names the environment variable holding the scheme and
// host (eg https://play.example.com) that requests are addressed to.
const CustomHostVariable = "GO_API_HOST"

// DefaultServerAddress is used when CustomHostVariable is not set.
const DefaultServerAddress = "https://aws-serverless-go-api.com"

type RequestAccessor struct {
	stripBasePath string
}

func (r *RequestAccessor) ProxyEventToHTTPRequest(req events.ALBTargetGroupRequest) (*http.Request, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	path := req.Path
	if len(r.stripBasePath) > 1 {
		path = strings.TrimPrefix(path, r.stripBasePath)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	serverAddress := DefaultServerAddress
	if customAddress, ok := os.LookupEnv(CustomHostVariable); ok {
		serverAddress = customAddress
	}
	path = serverAddress + path

	query := url.Values{}
	for k, v := range req.QueryStringParameters {
		query.Add(k, v)
	}
	for k, vs := range req.MultiValueQueryStringParameters {
		query.Del(k)
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	httpRequest, err := http.NewRequest(strings.ToUpper(req.HTTPMethod), path, bytes.NewReader(body))
	if err != nil {
		log.Printf("Could not convert request %s:%s to http.Request: %s", req.HTTPMethod, req.Path, err)
		return nil, err
	}

	for k, v := range req.Headers {
		httpRequest.Header.Add(k, v)
	}
	for k, vs := range req.MultiValueHeaders {
		httpRequest.Header.Del(k)
		for _, v := range vs {
			httpRequest.Header.Add(k, v)
		}
	}
	if host := httpRequest.Header.Get("Host"); host != "" {
		httpRequest.Host = host
	}

	return httpRequest, nil
}
