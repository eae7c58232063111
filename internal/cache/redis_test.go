package cache

import (
	"context"
	"testing"
)

func TestNew_RejectsInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "wrong scheme", url: "postgres://localhost:6379"},
		{name: "garbage", url: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(context.Background(), tt.url); err == nil {
				t.Errorf("expected error for URL %q, got nil", tt.url)
			}
		})
	}
}
