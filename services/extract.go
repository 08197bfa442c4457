package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"safex/config"
	"safex/models"

	"github.com/chromedp/chromedp"
)

// Extractor pulls a partial product record from a live page. A nil error with
// a partial record means extraction succeeded (missing fields hold their
// sentinels); a non-nil error is the definitive failure signal and the caller
// must discard the record and fall back to manual collection.
type Extractor interface {
	Extract(ctx context.Context, link string) (*models.ProductRecord, error)
}

// NewExtractor builds the adapter selected by the configuration.
func NewExtractor(cfg *config.Config) Extractor {
	timeout := time.Duration(cfg.Extractor.TimeoutSeconds) * time.Second
	if cfg.Extractor.Mode == "static" {
		return &StaticExtractor{Timeout: timeout}
	}
	return &BrowserExtractor{
		Timeout:    timeout,
		RenderWait: time.Duration(cfg.Extractor.RenderWaitSeconds) * time.Second,
	}
}

// extractedField is the outcome of one DOM query: a value, or nothing.
type extractedField struct {
	value string
	ok    bool
}

func (f extractedField) or(fallback string) string {
	if f.ok && f.value != "" {
		return f.value
	}
	return fallback
}

// BrowserExtractor renders the page in headless Chrome so script-driven
// content is present before the DOM is queried.
type BrowserExtractor struct {
	Timeout    time.Duration
	RenderWait time.Duration
}

const (
	priceQueryJS = `(() => {
		const el = document.querySelector('[class*=price], [class*=cost]');
		return el ? el.innerText.trim() : '';
	})()`
	reviewsQueryJS = `(() => Array.from(document.querySelectorAll('[class*=review-text], [class*=review-body]'))
		.slice(0, 5)
		.map(el => el.innerText.trim())
		.join(' '))()`
	titleQueryJS = `document.title`
)

func (e *BrowserExtractor) Extract(ctx context.Context, link string) (*models.ProductRecord, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.Timeout)
	defer cancelTimeout()

	// Navigation failure or a crashed browser is unrecoverable.
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(link),
		chromedp.Sleep(e.RenderWait),
	); err != nil {
		return nil, fmt.Errorf("render %s: %w", link, err)
	}

	// The three queries fail independently: a missing price element must not
	// cost us the title or the reviews.
	title := e.queryField(browserCtx, titleQueryJS)
	price := e.queryField(browserCtx, priceQueryJS)
	reviews := e.queryField(browserCtx, reviewsQueryJS)

	return &models.ProductRecord{
		Title:         title.or(models.Unknown),
		Price:         price.or(models.Unknown),
		RatingReviews: reviews.or(""),
		Description:   models.Unknown,
		Seller:        models.Unknown,
	}, nil
}

func (e *BrowserExtractor) queryField(ctx context.Context, js string) extractedField {
	var out string
	if err := chromedp.Run(ctx, chromedp.Evaluate(js, &out)); err != nil {
		log.Printf("extract: field query failed: %v", err)
		return extractedField{}
	}
	return extractedField{value: out, ok: true}
}
