package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverviewFromTable_Defaults(t *testing.T) {
	t.Run("nil table gives all defaults", func(t *testing.T) {
		o := OverviewFromTable(nil)
		assert.Equal(t, DefaultTripTitle, o.Title)
		assert.Equal(t, DefaultStartDate, o.StartDate)
	})

	t.Run("missing columns give all defaults", func(t *testing.T) {
		o := OverviewFromTable(NewTable([]string{"something", "else"}))
		assert.Equal(t, DefaultTripPurpose, o.Purpose)
	})

	t.Run("absent keys fall back individually", func(t *testing.T) {
		table := NewTable(OverviewHeaders)
		table.Append("title", "custom title")

		o := OverviewFromTable(table)
		assert.Equal(t, "custom title", o.Title)
		assert.Equal(t, DefaultTripPurpose, o.Purpose)
		assert.Equal(t, DefaultEndDate, o.EndDate)
	})
}

func TestOverview_RoundTrip(t *testing.T) {
	in := Overview{Title: "t", Purpose: "p", StartDate: "2025-09-18", EndDate: "2025-09-23"}
	out := OverviewFromTable(in.Table())
	assert.Equal(t, in, out)
}
