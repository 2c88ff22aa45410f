// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCtxAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	old := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(old) })

	ctx := ContextWithRequestID(context.Background(), "req-123")
	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Errorf("log output missing request_id: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("log output missing message: %s", out)
	}
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	old := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(old) })

	Ctx(context.Background()).Info().Msg("plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in output: %s", buf.String())
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
	ctx := ContextWithRequestID(context.Background(), "abc")
	if got := RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("RequestIDFromContext() = %q, want abc", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"INFO", "info"},
		{"warning", "warn"},
		{"nonsense", "info"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	old := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(old) })

	logger := WithComponent("store")
	logger.Info().Msg("opened")
	if !strings.Contains(buf.String(), `"component":"store"`) {
		t.Errorf("log output missing component: %s", buf.String())
	}
}
