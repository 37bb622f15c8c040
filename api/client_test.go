// ABOUTME: Tests for the API client core against a fake HTTP backend
// ABOUTME: Covers envelope decoding, auth header, error conversion and retries
package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func TestLoginDecodesEnvelope(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"user": {"id":"0b8dbb35-6c53-4a12-8a48-54954e4f7d2f","email":"ada@example.com","name":"Ada"},
				"token": "tok-123"
			}
		}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	auth, err := c.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if auth.Token != "tok-123" || auth.User.Email != "ada@example.com" {
		t.Fatalf("unexpected auth state %+v", auth)
	}
}

func TestServerErrorSurfacesVerbatim(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Invalid credentials"}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "bad"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Fatalf("expected server message verbatim, got %q", apiErr.Message)
	}
}

func TestMissingServerErrorFallsBack(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	_, err := c.AllContacts(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Failed to load contacts" {
		t.Fatalf("expected fallback message, got %q", apiErr.Message)
	}
}

func TestNonJSONBodyBecomesError(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	_, err := c.Dashboard(context.Background())
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatalf("non-JSON body should be a transport-class error, got *Error %v", apiErr)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer hs.Close()

	c := New(hs.URL, WithTokenSource(func() string { return "tok-456" }))
	if _, err := c.AllContacts(context.Background()); err != nil {
		t.Fatalf("AllContacts returned error: %v", err)
	}
	if gotAuth != "Bearer tok-456" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	var sawHeader bool
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	if _, err := c.AllContacts(context.Background()); err != nil {
		t.Fatalf("AllContacts returned error: %v", err)
	}
	if sawHeader {
		t.Fatal("Authorization header should be omitted when no token is held")
	}
}

func TestListContactsPagination(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contacts" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("pageSize") != "25" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"items": [{"id":"0b8dbb35-6c53-4a12-8a48-54954e4f7d2f","first_name":"Ada"}],
				"total": 51, "page": 2, "pageSize": 25, "totalPages": 3
			}
		}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	page, err := c.ListContacts(context.Background(), 2, 25)
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if page.Total != 51 || page.TotalPages != 3 || len(page.Items) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Items[0].FirstName != "Ada" {
		t.Fatalf("unexpected contact %+v", page.Items[0])
	}
}

func TestGetRetriesTransportFailure(t *testing.T) {
	var calls int32
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// Slam the connection shut so the client sees a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("server does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack failed: %v", err)
			}
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	if _, err := c.AllContacts(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected 2 attempts, got %d", n)
	}
}

func TestValidateIDRejectsNilBeforeNetwork(t *testing.T) {
	c := New("http://127.0.0.1:0") // never dialed
	_, err := c.GetContact(context.Background(), uuid.Nil)
	if err == nil {
		t.Fatal("expected validation error for nil id")
	}
}
