package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safex/models"
)

const productPage = `<html><head><title>Sneaker X</title></head><body>
<div class="product-price">₸ 12 500</div>
<div class="old-price">₸ 15 000</div>
<div class="review-text">great shoe</div>
<div class="review-body">runs small</div>
<div class="review-text">solid build</div>
<div class="review-text">fast shipping</div>
<div class="review-body">worth it</div>
<div class="review-text">sixth review must be dropped</div>
</body></html>`

func TestStaticExtractor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/item" {
			w.Write([]byte(productPage))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	e := &StaticExtractor{Timeout: 5 * time.Second}
	rec, err := e.Extract(context.Background(), srv.URL+"/item")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if rec.Title != "Sneaker X" {
		t.Errorf("Expected title Sneaker X, got %q", rec.Title)
	}
	if rec.Price != "₸ 12 500" {
		t.Errorf("Expected the first price element, got %q", rec.Price)
	}
	for _, want := range []string{"great shoe", "runs small", "solid build", "fast shipping", "worth it"} {
		if !strings.Contains(rec.RatingReviews, want) {
			t.Errorf("Expected reviews to contain %q, got %q", want, rec.RatingReviews)
		}
	}
	if strings.Contains(rec.RatingReviews, "sixth review") {
		t.Errorf("Expected at most five reviews, got %q", rec.RatingReviews)
	}
	if rec.Description != models.Unknown || rec.Seller != models.Unknown {
		t.Errorf("Expected description and seller sentinels, got %q / %q", rec.Description, rec.Seller)
	}
}

func TestStaticExtractorMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Bare page</title></head><body><p>nothing here</p></body></html>`))
	}))
	defer srv.Close()

	e := &StaticExtractor{Timeout: 5 * time.Second}
	rec, err := e.Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if rec.Price != models.Unknown {
		t.Errorf("Expected the unknown price sentinel, got %q", rec.Price)
	}
	if rec.RatingReviews != "" {
		t.Errorf("Expected empty reviews, got %q", rec.RatingReviews)
	}
}

func TestStaticExtractorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := &StaticExtractor{Timeout: 5 * time.Second}
	if _, err := e.Extract(context.Background(), srv.URL); err == nil {
		t.Errorf("Expected a definitive failure for a server error")
	}
}

func TestStaticExtractorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &StaticExtractor{Timeout: 5 * time.Second}
	if _, err := e.Extract(ctx, "http://localhost:1/item"); err == nil {
		t.Errorf("Expected an error for a cancelled context")
	}
}

func TestExtractedFieldOr(t *testing.T) {
	if got := (extractedField{value: "x", ok: true}).or("fallback"); got != "x" {
		t.Errorf("Expected the value, got %q", got)
	}
	if got := (extractedField{}).or("fallback"); got != "fallback" {
		t.Errorf("Expected the fallback, got %q", got)
	}
	if got := (extractedField{value: "", ok: true}).or("fallback"); got != "fallback" {
		t.Errorf("Expected the fallback for an empty value, got %q", got)
	}
}
