package news

import (
	"testing"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  model.Sentiment
	}{
		{"Stock surges on profit beat", model.SentimentPositive},
		{"Shares fall on miss", model.SentimentNegative},
		{"Company announces new CEO", model.SentimentNeutral},
		{"", model.SentimentNeutral},
		// Both sets match: positive is checked first and wins.
		{"Shares gain despite quarterly loss", model.SentimentPositive},
		// Case-insensitive.
		{"PROFITS SOAR", model.SentimentPositive},
		{"Dividend DECLINE expected", model.SentimentNegative},
		// Substring semantics: "up" inside a longer word still matches.
		{"Supply update released", model.SentimentPositive},
	}
	for _, tt := range tests {
		if got := Classify(tt.title); got != tt.want {
			t.Errorf("Classify(%q): expected %s, got %s", tt.title, tt.want, got)
		}
	}
}

func TestFilter(t *testing.T) {
	items := []model.NewsItem{
		{Title: "Kept", Link: "https://example.com/a"},
		{Title: "", Link: "https://example.com/b"},
		{Title: "No link"},
		{Title: "Also kept", Link: "https://example.com/c"},
	}

	kept := Filter(items)
	if len(kept) != 2 {
		t.Fatalf("expected 2 items kept, got %d", len(kept))
	}
	if kept[0].Title != "Kept" || kept[1].Title != "Also kept" {
		t.Errorf("unexpected items kept: %+v", kept)
	}
}

func TestClassifyAll(t *testing.T) {
	items := []model.NewsItem{
		{Title: "Profit rises", Link: "l"},
		{Title: "Revenue drops", Link: "l"},
		{Title: "Board meeting scheduled", Link: "l"},
	}

	out := ClassifyAll(items)
	want := []model.Sentiment{model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral}
	for i, w := range want {
		if out[i].Sentiment != w {
			t.Errorf("item %d: expected %s, got %s", i, w, out[i].Sentiment)
		}
	}
}
