package service

import (
	"testing"

	"swap-marketplace/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreditsRequiredFor_StructuredPrice(t *testing.T) {
	item := &model.Item{
		Credits:     decimal.NullDecimal{Decimal: decimal.NewFromInt(7), Valid: true},
		Description: "Credits: 99",
	}

	// Structured price wins over the legacy description pattern
	assert.Equal(t, "7.00", creditsRequiredFor(item).StringFixed(2))
}

func TestCreditsRequiredFor_LegacyDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"plain", "Good condition. Credits: 4", "4.00"},
		{"uppercase", "CREDITS: 12", "12.00"},
		{"extra spaces", "credits:   8", "8.00"},
		{"embedded", "A lamp (credits: 2) barely used", "2.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &model.Item{Description: tt.description}
			assert.Equal(t, tt.want, creditsRequiredFor(item).StringFixed(2))
		})
	}
}

func TestCreditsRequiredFor_DefaultsToOne(t *testing.T) {
	item := &model.Item{Description: "no price anywhere"}

	assert.Equal(t, "1.00", creditsRequiredFor(item).StringFixed(2))
}
