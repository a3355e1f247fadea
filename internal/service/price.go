package service

import (
	"regexp"

	"swap-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

// Items listed before the structured price field existed carry their price
// inside the description as "Credits: N".
var legacyCreditsPattern = regexp.MustCompile(`(?i)credits:\s*(\d+)`)

var defaultItemCredits = decimal.NewFromInt(1)

// creditsRequiredFor resolves the price of an item: the structured field when
// present, the legacy description pattern for old rows, otherwise one credit.
func creditsRequiredFor(item *model.Item) decimal.Decimal {
	if price, ok := item.Price(); ok {
		return price
	}
	if m := legacyCreditsPattern.FindStringSubmatch(item.Description); m != nil {
		if price, err := decimal.NewFromString(m[1]); err == nil {
			return price
		}
	}
	return defaultItemCredits
}
