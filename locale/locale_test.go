package locale

import "testing"

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		label string
		want  Language
	}{
		{LabelRussian, Russian},
		{LabelKazakh, Kazakh},
		{LabelEnglish, English},
		{"english", English},
		{"Kazakh", Kazakh},
		{"", Russian},
		{"Deutsch", Russian},
		{ActionRestart, Russian},
	}
	for _, c := range cases {
		if got := ParseLanguage(c.label); got != c.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", c.label, got, c.want)
		}
	}
}

func TestTextsForIsTotal(t *testing.T) {
	for _, lang := range []Language{Russian, Kazakh, English} {
		texts := TextsFor(lang)
		if texts.Greeting == "" || texts.ManualPrice == "" || texts.ManualPhoto == "" ||
			texts.BadLink == "" || texts.ExtractFailed == "" || texts.ExplainFailed == "" ||
			texts.RiskLine == "" || texts.WhatNext == "" {
			t.Errorf("Incomplete text set for %s: %+v", lang, texts)
		}
	}
}

func TestTextsForOutOfRange(t *testing.T) {
	if got := TextsFor(Language(42)); got != TextsFor(Russian) {
		t.Errorf("Expected the Russian set for an out-of-range language")
	}
}

func TestTierLabel(t *testing.T) {
	texts := TextsFor(English)
	if texts.TierLabel("high") != texts.TierHigh {
		t.Errorf("Expected the high label")
	}
	if texts.TierLabel("medium") != texts.TierMedium {
		t.Errorf("Expected the medium label")
	}
	if texts.TierLabel("low") != texts.TierLow {
		t.Errorf("Expected the low label")
	}
	if texts.TierLabel("whatever") != texts.TierLow {
		t.Errorf("Expected the low label as the default")
	}
}
