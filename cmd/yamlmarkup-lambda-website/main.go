// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net/http"

	"carvel.dev/yamlmarkup/pkg/cmd"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

type HandlerFuncAdapter struct {
	RequestAccessor
	handler http.Handler
}

func New(handler http.Handler) *HandlerFuncAdapter {
	return &HandlerFuncAdapter{
		handler: handler,
	}
}

// Proxy serves one ALB target group event with the wrapped handler.
func (h *HandlerFuncAdapter) Proxy(event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	req, err := h.ProxyEventToHTTPRequest(event)
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusMisdirectedRequest}, fmt.Errorf("Could not convert event to request: %v", err)
	}

	w := NewProxyResponseWriter()
	h.handler.ServeHTTP(http.ResponseWriter(w), req)

	resp, err := w.GetProxyResponse()
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusUnprocessableEntity}, fmt.Errorf("Error while generating response: %v", err)
	}

	return resp, nil
}

func main() {
	websiteOpts := cmd.NewWebsiteOptions()
	// ALB terminates TLS and sets X-Forwarded-Proto
	websiteOpts.RedirectToHTTPS = true
	lambda.Start(New(websiteOpts.Server().Mux()).Proxy)
}
