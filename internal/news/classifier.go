// Package news classifies headlines with a coarse keyword sentiment.
package news

import (
	"strings"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

var (
	positiveKeywords = []string{"surge", "rise", "gain", "beat", "up", "profit"}
	negativeKeywords = []string{"fall", "drop", "loss", "decline", "down", "miss"}
)

// Classify labels a headline by case-insensitive substring match. Positive
// keywords are checked first, so a title matching both sets is positive.
// Anything else, including the empty string, is neutral.
func Classify(title string) model.Sentiment {
	lower := strings.ToLower(title)
	for _, w := range positiveKeywords {
		if strings.Contains(lower, w) {
			return model.SentimentPositive
		}
	}
	for _, w := range negativeKeywords {
		if strings.Contains(lower, w) {
			return model.SentimentNegative
		}
	}
	return model.SentimentNeutral
}

// Filter drops items missing a title or link. The provider occasionally
// returns partial records and those never reach classification or display.
func Filter(items []model.NewsItem) []model.NewsItem {
	kept := make([]model.NewsItem, 0, len(items))
	for _, it := range items {
		if it.Title == "" || it.Link == "" {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// ClassifyAll attaches a sentiment label to every item.
func ClassifyAll(items []model.NewsItem) []model.NewsItem {
	for i := range items {
		items[i].Sentiment = Classify(items[i].Title)
	}
	return items
}
