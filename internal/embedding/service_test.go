package embedding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestService_Embed_Unconfigured(t *testing.T) {
	svc := NewService(nil)

	vec := svc.Embed(context.Background(), "anything")
	if len(vec) != Dim {
		t.Fatalf("Embed() len = %d, want %d", len(vec), Dim)
	}
	if !IsZero(vec) {
		t.Error("Embed() without a provider should return the zero vector")
	}
}

func TestService_Embed_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(NewClient(srv.URL, "key", "model", time.Second))

	vec := svc.Embed(context.Background(), "anything")
	if len(vec) != Dim {
		t.Fatalf("Embed() len = %d, want %d", len(vec), Dim)
	}
	if !IsZero(vec) {
		t.Error("Embed() on provider failure should degrade to the zero vector")
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(ZeroVector()) {
		t.Error("IsZero(ZeroVector()) = false")
	}

	vec := ZeroVector()
	vec[100] = 0.1
	if IsZero(vec) {
		t.Error("IsZero() = true for non-zero vector")
	}
}
