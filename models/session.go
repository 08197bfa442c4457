package models

import (
	"sync"

	"safex/locale"
)

// Stage identifies where a conversation currently is in the assessment flow.
type Stage int

const (
	StageLanguage Stage = iota
	StageLink
	StageManualPrice
	StageManualRatingReviews
	StageManualDescription
	StageManualSeller
	StageManualPhoto
)

func (s Stage) String() string {
	switch s {
	case StageLanguage:
		return "language"
	case StageLink:
		return "link"
	case StageManualPrice:
		return "manual_price"
	case StageManualRatingReviews:
		return "manual_rating_reviews"
	case StageManualDescription:
		return "manual_description"
	case StageManualSeller:
		return "manual_seller"
	case StageManualPhoto:
		return "manual_photo"
	}
	return "unknown"
}

// Session is the state of one active conversation. Language is fixed at
// selection time; the product record is filled monotonically across one pass
// through the flow and the whole session is reset after a result is shown.
//
// The mutex serializes turns of a single conversation: transports handle each
// inbound message on its own goroutine, so a slow extraction blocks only the
// session that asked for it.
type Session struct {
	Mu sync.Mutex

	ID       string
	Language locale.Language
	Link     string
	Product  ProductRecord
	Stage    Stage
}

// Reset discards everything except the conversation identity.
func (s *Session) Reset() {
	s.Language = locale.Russian
	s.Link = ""
	s.Product = ProductRecord{}
	s.Stage = StageLanguage
}
