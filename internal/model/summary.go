package model

// Fundamentals holds the descriptive company figures shown in the
// fundamentals panel. Zero values mean the provider omitted the field.
type Fundamentals struct {
	PreviousClose float64
	Open          float64
	DayLow        float64
	DayHigh       float64
	MarketCap     float64
	PERatio       float64
	EPS           float64
	DividendYield float64
	Sector        string
	Industry      string
}

// Summary is the scalar metadata fetched per symbol alongside the bar
// series: the 52-week range plus fundamentals.
type Summary struct {
	High52w      float64
	Low52w       float64
	Fundamentals Fundamentals
}
