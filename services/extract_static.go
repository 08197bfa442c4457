package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"safex/models"

	"github.com/gocolly/colly/v2"
)

// StaticExtractor is the no-browser fallback adapter for hosts without
// Chrome. It runs the same selectors over the fetched HTML, so pages that
// build their content with scripts will come back mostly unknown.
type StaticExtractor struct {
	Timeout time.Duration
}

func (e *StaticExtractor) Extract(ctx context.Context, link string) (*models.ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector()
	c.SetRequestTimeout(e.Timeout)

	var title, price extractedField
	var reviews []string

	c.OnHTML("title", func(el *colly.HTMLElement) {
		if !title.ok {
			title = extractedField{value: strings.TrimSpace(el.Text), ok: true}
		}
	})
	c.OnHTML("[class*=price], [class*=cost]", func(el *colly.HTMLElement) {
		if !price.ok {
			price = extractedField{value: strings.TrimSpace(el.Text), ok: true}
		}
	})
	c.OnHTML("[class*=review-text], [class*=review-body]", func(el *colly.HTMLElement) {
		if len(reviews) < 5 {
			reviews = append(reviews, strings.TrimSpace(el.Text))
		}
	})

	if err := c.Visit(link); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", link, err)
	}

	return &models.ProductRecord{
		Title:         title.or(models.Unknown),
		Price:         price.or(models.Unknown),
		RatingReviews: strings.Join(reviews, " "),
		Description:   models.Unknown,
		Seller:        models.Unknown,
	}, nil
}
