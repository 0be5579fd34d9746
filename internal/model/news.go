package model

import "time"

// Sentiment is the coarse tone label attached to a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NewsItem is one headline for a symbol. PublishedAt is zero when the
// provider omits a timestamp; Publisher may be empty.
type NewsItem struct {
	Title       string
	Link        string
	Publisher   string
	PublishedAt time.Time
	Sentiment   Sentiment
}
