package domain

import (
	"fmt"
	"strings"
)

// AverageKey identifies one average computation: a currency pair over a window of weeks.
type AverageKey struct {
	From  string
	To    string
	Weeks int
}

func (k AverageKey) Series() string {
	return SeriesName(k.From, k.To)
}

func (k AverageKey) String() string {
	return fmt.Sprintf("%s/%s:%d", strings.ToUpper(k.From), strings.ToUpper(k.To), k.Weeks)
}
