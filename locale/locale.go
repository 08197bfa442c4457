// Package locale holds the fixed per-language text sets used by the
// conversation flow. The mapping from Language to Texts is total; an
// unrecognized selection label resolves to Russian by rule, not by accident.
package locale

import "strings"

// Language is the conversation language, fixed once per session.
type Language int

const (
	Russian Language = iota
	Kazakh
	English
)

// Selection labels shown as quick-reply options when a conversation starts.
const (
	LabelRussian = "Русский язык"
	LabelKazakh  = "Қаз яз"
	LabelEnglish = "English"
)

// Post-result action labels. Only ActionRestart restarts the flow; the other
// two answer with static texts.
const (
	ActionRestart  = "🔁 Проверить другой товар"
	ActionLearn    = "📚 Узнать, как отличить подделки"
	ActionFeedback = "📩 Отправить отзыв о боте"
)

// ParseLanguage maps a selection label or a plain language name to a
// Language. Anything unrecognized falls back to Russian.
func ParseLanguage(label string) Language {
	switch label {
	case LabelKazakh:
		return Kazakh
	case LabelEnglish:
		return English
	case LabelRussian:
		return Russian
	}
	switch strings.ToLower(label) {
	case "kazakh":
		return Kazakh
	case "english":
		return English
	default:
		return Russian
	}
}

func (l Language) String() string {
	switch l {
	case Kazakh:
		return "Kazakh"
	case English:
		return "English"
	}
	return "Russian"
}

// Texts is the full prompt set for one language.
type Texts struct {
	ChooseLanguage string
	Greeting       string
	BadLink        string
	ExtractFailed  string
	Analyzing      string
	ManualPrice    string
	ManualRating   string
	ManualDesc     string
	ManualSeller   string
	ManualPhoto    string
	ResultHeader   string
	RiskLine       string
	ExplainFailed  string
	WhatNext       string
	LearnTips      string
	FeedbackThanks string
	TierLow        string
	TierMedium     string
	TierHigh       string
}

// TierLabel returns the localized emoji label for a tier name
// ("low", "medium" or "high").
func (t Texts) TierLabel(tier string) string {
	switch tier {
	case "high":
		return t.TierHigh
	case "medium":
		return t.TierMedium
	}
	return t.TierLow
}

var texts = map[Language]Texts{
	Russian: {
		ChooseLanguage: "Выберите язык / Select language:",
		Greeting:       "👋 Привет! Я — SAFEX, ИИ-детектор подделок и подозрительных товаров. Отправь ссылку на товар.",
		BadLink:        "⚠️ Отправь корректную ссылку, начиная с http:// или https://",
		ExtractFailed:  "⚠️ Не удалось получить данные автоматически. Заполни вручную.",
		Analyzing:      "🔍 Анализирую товар, подожди...",
		ManualPrice:    "💲 Укажи цену товара:",
		ManualRating:   "⭐ Введи рейтинг и отзывы товара:",
		ManualDesc:     "🔍 Введи подозрительные слова из описания (если есть):",
		ManualSeller:   "🏪 Введи продавца или магазин:",
		ManualPhoto:    "📸 Прикрепи фото товара (или пропусти):",
		ResultHeader:   "📊 Анализ завершён!",
		RiskLine:       "🧩 Риск подделки: %s (%d%%)",
		ExplainFailed:  "❌ Не удалось получить объяснение. Ориентируйся на числовую оценку выше.",
		WhatNext:       "Что дальше?",
		LearnTips:      "📚 Подделку выдают: цена заметно ниже рыночной, слова «копия» и «реплика» в отзывах, скрытый продавец и слишком мало отзывов.",
		FeedbackThanks: "📩 Спасибо! Напиши свой отзыв следующим сообщением — мы его обязательно прочитаем.",
		TierLow:        "🟢 НИЗКИЙ РИСК",
		TierMedium:     "🟠 СРЕДНИЙ РИСК",
		TierHigh:       "🔴 ВЫСОКИЙ РИСК",
	},
	Kazakh: {
		ChooseLanguage: "Выберите язык / Select language:",
		Greeting:       "👋 Сәлем! Мен — SAFEX, жалған немесе күдікті тауарларды анықтайтын ИИ. Тауарға сілтеме жіберіңіз.",
		BadLink:        "⚠️ http:// немесе https:// деп басталатын дұрыс сілтеме жіберіңіз",
		ExtractFailed:  "⚠️ Деректерді автоматты түрде алу мүмкін болмады. Қолмен толтырыңыз.",
		Analyzing:      "🔍 Тауарды талдап жатырмын, күте тұрыңыз...",
		ManualPrice:    "💲 Тауардың бағасын көрсетіңіз:",
		ManualRating:   "⭐ Баға мен пікірлерді енгізіңіз:",
		ManualDesc:     "🔍 Сипаттамадан күдікті сөздерді енгізіңіз:",
		ManualSeller:   "🏪 Сатушыны немесе дүкенді енгізіңіз:",
		ManualPhoto:    "📸 Тауардың суретін тіркеңіз (немесе өткізіп жіберіңіз):",
		ResultHeader:   "📊 Талдау аяқталды!",
		RiskLine:       "🧩 Жалған болу қаупі: %s (%d%%)",
		ExplainFailed:  "❌ Түсіндірме алу мүмкін болмады. Жоғарыдағы сандық бағаға сүйеніңіз.",
		WhatNext:       "Әрі қарай не істейміз?",
		LearnTips:      "📚 Жалған тауардың белгілері: нарықтан айтарлықтай төмен баға, пікірлердегі «көшірме» және «реплика» сөздері, жасырын сатушы және тым аз пікір.",
		FeedbackThanks: "📩 Рахмет! Пікіріңізді келесі хабарламамен жазыңыз — біз оны міндетті түрде оқимыз.",
		TierLow:        "🟢 ТӨМЕН ҚАУІП",
		TierMedium:     "🟠 ОРТАША ҚАУІП",
		TierHigh:       "🔴 ЖОҒАРЫ ҚАУІП",
	},
	English: {
		ChooseLanguage: "Выберите язык / Select language:",
		Greeting:       "👋 Hi! I'm SAFEX, an AI detector for counterfeit and suspicious products. Send a product link.",
		BadLink:        "⚠️ Send a valid link starting with http:// or https://",
		ExtractFailed:  "⚠️ Could not fetch the data automatically. Fill it in manually.",
		Analyzing:      "🔍 Analyzing the product, please wait...",
		ManualPrice:    "💲 Enter the product price:",
		ManualRating:   "⭐ Enter the rating and reviews:",
		ManualDesc:     "🔍 Enter suspicious words from description (if any):",
		ManualSeller:   "🏪 Enter the seller or store:",
		ManualPhoto:    "📸 Attach a product photo (or skip):",
		ResultHeader:   "📊 Analysis complete!",
		RiskLine:       "🧩 Counterfeit risk: %s (%d%%)",
		ExplainFailed:  "❌ Could not get an explanation. Rely on the numeric score above.",
		WhatNext:       "What next?",
		LearnTips:      "📚 Counterfeit giveaways: a price well below market, the words \"copy\" and \"replica\" in reviews, a hidden seller and too few reviews.",
		FeedbackThanks: "📩 Thanks! Send your feedback in the next message — we read every one.",
		TierLow:        "🟢 LOW RISK",
		TierMedium:     "🟠 MEDIUM RISK",
		TierHigh:       "🔴 HIGH RISK",
	},
}

// TextsFor returns the prompt set for the given language. The map covers
// every Language value; an out-of-range value gets the Russian set.
func TextsFor(l Language) Texts {
	if t, ok := texts[l]; ok {
		return t
	}
	return texts[Russian]
}
