// Package bot drives the assessment conversation: language selection, link
// submission, extraction or manual collection, scoring, explanation, result.
// The flow is a state machine over transport-agnostic messages so the whole
// sequence is testable without Telegram or a browser.
package bot

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"safex/config"
	"safex/locale"
	"safex/models"
	"safex/services"
)

var linkPattern = regexp.MustCompile(`^https?://`)

// InputKind classifies one inbound message.
type InputKind int

const (
	InputText InputKind = iota
	InputPhoto
)

// Incoming is one user message as seen by the machine.
type Incoming struct {
	Text    string
	PhotoID string
}

func (in Incoming) kind() InputKind {
	if in.PhotoID != "" {
		return InputPhoto
	}
	return InputText
}

// Outgoing is one reply for the transport to deliver.
type Outgoing struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
}

// ExplainFunc generates the free-text rationale for a scored record.
type ExplainFunc func(ctx context.Context, rec models.ProductRecord, tier models.RiskTier, lang locale.Language) (string, error)

// Machine executes conversation turns. It owns no session state of its own
// and is safe for concurrent use across sessions.
type Machine struct {
	extractor      services.Extractor
	explain        ExplainFunc
	extractTimeout time.Duration
	explainTimeout time.Duration
}

func NewMachine(extractor services.Extractor, explain ExplainFunc, cfg *config.Config) *Machine {
	return &Machine{
		extractor:      extractor,
		explain:        explain,
		extractTimeout: time.Duration(cfg.Extractor.TimeoutSeconds) * time.Second,
		explainTimeout: time.Duration(cfg.Explain.TimeoutSeconds) * time.Second,
	}
}

type transitionKey struct {
	stage models.Stage
	kind  InputKind
}

type handlerFunc func(m *Machine, ctx context.Context, s *models.Session, in Incoming) []Outgoing

// transitions is the full transition table. An input kind with no entry for
// the current stage re-prompts that stage; there is no skipping, no
// reordering and no way back.
var transitions = map[transitionKey]handlerFunc{
	{models.StageLanguage, InputText}:            (*Machine).handleLanguage,
	{models.StageLink, InputText}:                (*Machine).handleLink,
	{models.StageManualPrice, InputText}:         (*Machine).handleManualPrice,
	{models.StageManualRatingReviews, InputText}: (*Machine).handleManualRating,
	{models.StageManualDescription, InputText}:   (*Machine).handleManualDescription,
	{models.StageManualSeller, InputText}:        (*Machine).handleManualSeller,
	{models.StageManualPhoto, InputText}:         (*Machine).handleManualPhotoSkip,
	{models.StageManualPhoto, InputPhoto}:        (*Machine).handleManualPhoto,
}

// Start resets the session and presents the language selection keyboard.
func (m *Machine) Start(s *models.Session) []Outgoing {
	s.Reset()
	return []Outgoing{languagePrompt()}
}

// Handle processes one inbound message for the session and returns the
// replies to deliver. The caller must hold the session's mutex.
func (m *Machine) Handle(ctx context.Context, s *models.Session, in Incoming) []Outgoing {
	h, ok := transitions[transitionKey{s.Stage, in.kind()}]
	if !ok {
		return []Outgoing{m.promptFor(s)}
	}
	return h(m, ctx, s, in)
}

func languagePrompt() Outgoing {
	return Outgoing{
		Text: locale.TextsFor(locale.Russian).ChooseLanguage,
		Keyboard: [][]string{
			{locale.LabelRussian, locale.LabelKazakh, locale.LabelEnglish},
		},
	}
}

// promptFor repeats the prompt of the session's current stage.
func (m *Machine) promptFor(s *models.Session) Outgoing {
	texts := locale.TextsFor(s.Language)
	switch s.Stage {
	case models.StageLanguage:
		return languagePrompt()
	case models.StageLink:
		return Outgoing{Text: texts.BadLink}
	case models.StageManualPrice:
		return Outgoing{Text: texts.ManualPrice}
	case models.StageManualRatingReviews:
		return Outgoing{Text: texts.ManualRating}
	case models.StageManualDescription:
		return Outgoing{Text: texts.ManualDesc}
	case models.StageManualSeller:
		return Outgoing{Text: texts.ManualSeller}
	case models.StageManualPhoto:
		return Outgoing{Text: texts.ManualPhoto}
	}
	return languagePrompt()
}

func (m *Machine) handleLanguage(_ context.Context, s *models.Session, in Incoming) []Outgoing {
	texts := locale.TextsFor(s.Language)
	switch in.Text {
	case locale.ActionRestart:
		return m.Start(s)
	case locale.ActionLearn:
		return []Outgoing{{Text: texts.LearnTips}}
	case locale.ActionFeedback:
		return []Outgoing{{Text: texts.FeedbackThanks}}
	}

	// Any other text is a language selection; unknown labels resolve to
	// Russian without rejecting the input.
	s.Language = locale.ParseLanguage(in.Text)
	s.Stage = models.StageLink
	return []Outgoing{{
		Text:           locale.TextsFor(s.Language).Greeting,
		RemoveKeyboard: true,
	}}
}

func (m *Machine) handleLink(ctx context.Context, s *models.Session, in Incoming) []Outgoing {
	texts := locale.TextsFor(s.Language)
	link := strings.TrimSpace(in.Text)
	if !linkPattern.MatchString(link) {
		// Self-loop: the stage and the stored link stay untouched.
		return []Outgoing{{Text: texts.BadLink}}
	}
	s.Link = link

	extractCtx, cancel := context.WithTimeout(ctx, m.extractTimeout)
	defer cancel()
	rec, err := m.extractor.Extract(extractCtx, link)
	if err != nil {
		// Total extraction failure: discard whatever came back and collect
		// everything manually, starting with the price. One mode switch, no
		// retry.
		log.Printf("bot: extraction failed for %s: %v", link, err)
		s.Product = models.ProductRecord{}
		s.Stage = models.StageManualPrice
		return []Outgoing{
			{Text: texts.ExtractFailed},
			{Text: texts.ManualPrice},
		}
	}

	s.Product = *rec
	return m.finish(ctx, s)
}

func (m *Machine) handleManualPrice(_ context.Context, s *models.Session, in Incoming) []Outgoing {
	s.Product.Price = in.Text
	s.Stage = models.StageManualRatingReviews
	return []Outgoing{{Text: locale.TextsFor(s.Language).ManualRating}}
}

func (m *Machine) handleManualRating(_ context.Context, s *models.Session, in Incoming) []Outgoing {
	s.Product.RatingReviews = in.Text
	s.Stage = models.StageManualDescription
	return []Outgoing{{Text: locale.TextsFor(s.Language).ManualDesc}}
}

func (m *Machine) handleManualDescription(_ context.Context, s *models.Session, in Incoming) []Outgoing {
	s.Product.Description = in.Text
	s.Stage = models.StageManualSeller
	return []Outgoing{{Text: locale.TextsFor(s.Language).ManualSeller}}
}

func (m *Machine) handleManualSeller(_ context.Context, s *models.Session, in Incoming) []Outgoing {
	s.Product.Seller = in.Text
	s.Stage = models.StageManualPhoto
	return []Outgoing{{Text: locale.TextsFor(s.Language).ManualPhoto}}
}

func (m *Machine) handleManualPhoto(ctx context.Context, s *models.Session, in Incoming) []Outgoing {
	s.Product.PhotoRef = in.PhotoID
	return m.finish(ctx, s)
}

// handleManualPhotoSkip treats any text in the photo stage as a skip.
func (m *Machine) handleManualPhotoSkip(ctx context.Context, s *models.Session, _ Incoming) []Outgoing {
	s.Product.PhotoRef = models.NoPhoto
	return m.finish(ctx, s)
}

// finish scores the completed record, fetches the explanation, presents the
// result and resets the session for the next assessment.
func (m *Machine) finish(ctx context.Context, s *models.Session) []Outgoing {
	texts := locale.TextsFor(s.Language)
	out := []Outgoing{{Text: texts.Analyzing}}

	s.Product.Complete()
	score, tier := services.ScoreProduct(s.Product)

	explainCtx, cancel := context.WithTimeout(ctx, m.explainTimeout)
	defer cancel()
	explanation, err := m.explain(explainCtx, s.Product, tier, s.Language)
	if err != nil {
		// The numeric result is still presented; only the rationale degrades.
		log.Printf("bot: explanation failed: %v", err)
		explanation = texts.ExplainFailed
	}

	result := fmt.Sprintf("%s\n%s\n%s",
		texts.ResultHeader,
		fmt.Sprintf(texts.RiskLine, texts.TierLabel(string(tier)), score),
		explanation,
	)
	out = append(out, Outgoing{Text: result})
	out = append(out, Outgoing{
		Text: texts.WhatNext,
		Keyboard: [][]string{
			{locale.ActionRestart},
			{locale.ActionLearn},
			{locale.ActionFeedback},
		},
	})

	s.Reset()
	return out
}
