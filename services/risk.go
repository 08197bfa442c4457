package services

import (
	"strconv"
	"strings"

	"safex/models"
)

// suspiciousPhrases are matched as substrings of the lowercased reviews text.
// Russian originals plus their English equivalents.
var suspiciousPhrases = []string{
	"копия", "реплика", "не оригинал", "1:1 оригинал", "серый товар",
	"copy", "replica", "not original", "1:1 original", "grey-market",
}

// riskRules is the full additive rule set. Each rule is pure and evaluated
// exactly once; the total does not depend on evaluation order.
var riskRules = []func(models.ProductRecord) int{
	priceRule,
	suspiciousLanguageRule,
	sellerOpacityRule,
	reviewSparsityRule,
}

// ScoreProduct computes the counterfeit-risk score and tier for a completed
// product record. It never mutates the record.
func ScoreProduct(rec models.ProductRecord) (int, models.RiskTier) {
	score := 0
	for _, rule := range riskRules {
		score += rule(rec)
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, TierForScore(score)
}

// TierForScore maps a clamped score onto the three risk tiers.
func TierForScore(score int) models.RiskTier {
	switch {
	case score >= 70:
		return models.RiskHigh
	case score >= 40:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// priceRule adds 30 when the price has no digits, cannot be parsed, or
// parses below 1000. No currency normalization: the threshold applies to
// whatever unit was entered.
func priceRule(rec models.ProductRecord) int {
	if !strings.ContainsAny(rec.Price, "0123456789") {
		return 30
	}
	numeric := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, rec.Price)
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil || value < 1000 {
		return 30
	}
	return 0
}

func suspiciousLanguageRule(rec models.ProductRecord) int {
	reviews := strings.ToLower(rec.RatingReviews)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(reviews, phrase) {
			return 20
		}
	}
	return 0
}

func sellerOpacityRule(rec models.ProductRecord) int {
	seller := strings.TrimSpace(rec.Seller)
	if seller == "" || strings.EqualFold(seller, models.Unknown) {
		return 20
	}
	return 0
}

// reviewSparsityRule penalizes thin review text. An empty reviews string gets
// no penalty: only text that exists but says little counts as sparse.
func reviewSparsityRule(rec models.ProductRecord) int {
	if rec.RatingReviews != "" && len(strings.Fields(rec.RatingReviews)) < 10 {
		return 10
	}
	return 0
}
