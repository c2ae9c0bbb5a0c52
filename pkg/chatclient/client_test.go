package chatclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {"conversations": []}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("abc123"))
	if _, err := client.ListConversations(context.Background()); err != nil {
		t.Fatalf("list conversations: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientTypedAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "error": "Authentication required", "message": "Valid identity token is required"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken(""))
	_, err := client.ListConversations(context.Background())
	if err == nil {
		t.Fatalf("expected error for 401 response")
	}
	if !IsAuthError(err) {
		t.Fatalf("expected IsAuthError to report true, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "Authentication required" {
		t.Fatalf("unexpected error code %q", apiErr.Code)
	}
}

func TestClientEnvelopeFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "Conversation not found or access denied"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("t"))
	_, err := client.GetConversation(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error for success=false envelope")
	}
	if IsAuthError(err) {
		t.Fatalf("200-status failure must not be classified as auth error")
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("t"), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := client.ListConversations(context.Background())
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout not enforced, call took %v", elapsed)
	}
}
