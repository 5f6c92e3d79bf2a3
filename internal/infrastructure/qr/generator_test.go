package qr

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestGenerator_DataURI(t *testing.T) {
	gen := NewGenerator()

	uri, err := gen.DataURI("https://scandine.example.com/menu/cafe-1")
	if err != nil {
		t.Fatalf("DataURI failed: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected a PNG data URI, got %q", uri[:min(len(uri), 40)])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("expected the payload to start with the PNG signature")
	}
}

func TestGenerator_DataURIIsDeterministic(t *testing.T) {
	gen := NewGenerator()

	first, err := gen.DataURI("https://scandine.example.com/menu/cafe-1")
	if err != nil {
		t.Fatalf("DataURI failed: %v", err)
	}
	second, err := gen.DataURI("https://scandine.example.com/menu/cafe-1")
	if err != nil {
		t.Fatalf("DataURI failed: %v", err)
	}
	if first != second {
		t.Error("expected the same URL to encode to the same image")
	}
}
