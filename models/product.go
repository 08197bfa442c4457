package models

// Unknown marks a product attribute that could not be determined, as opposed
// to one that simply has not been asked for yet.
const Unknown = "unknown"

// NoPhoto marks an explicitly skipped photo.
const NoPhoto = "no photo"

// ProductRecord holds the attributes of one item under assessment.
type ProductRecord struct {
	Title         string `json:"title"`
	Price         string `json:"price"`
	RatingReviews string `json:"ratingReviews"`
	Description   string `json:"description"`
	Seller        string `json:"seller"`
	PhotoRef      string `json:"photoRef,omitempty"`
}

// Complete fills every still-empty field with its sentinel so that scoring
// never runs on unset state. RatingReviews is left as-is: the empty string is
// its own explicit "nothing known" marker and the scorer treats it that way.
func (p *ProductRecord) Complete() {
	if p.Title == "" {
		p.Title = Unknown
	}
	if p.Price == "" {
		p.Price = Unknown
	}
	if p.Description == "" {
		p.Description = Unknown
	}
	if p.Seller == "" {
		p.Seller = Unknown
	}
	if p.PhotoRef == "" {
		p.PhotoRef = NoPhoto
	}
}

// RiskTier is the coarse label derived from the numeric risk score.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)
