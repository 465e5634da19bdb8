package main

import (
	"testing"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestVisitLine(t *testing.T) {
	v := model.Visit{
		PlaceName:     "모모스커피",
		VisitTime:     "10:30",
		Category:      "카페",
		OrderedMenu:   "드립커피, 바스크 치즈케이크",
		SupportedCost: "15000",
	}

	line := visitLine(v)
	assert.Contains(t, line, "10:30")
	assert.Contains(t, line, "모모스커피 (카페)")
	assert.Contains(t, line, "드립커피, 바스크 치즈케이크")
	assert.Contains(t, line, "15,000원")

	v.OrderedMenu = ""
	v.SupportedCost = ""
	assert.Equal(t, "  10:30  모모스커피 (카페)", visitLine(v), "no menu or spend suffix when empty")
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0", formatWon(0))
	assert.Equal(t, "1,000", formatWon(1000))
	assert.Equal(t, "1,234,567", formatWon(1234567))
	assert.Equal(t, "-12,000", formatWon(-12000))
}
