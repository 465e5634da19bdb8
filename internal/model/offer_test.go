package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOfferStatus(t *testing.T) {
	for _, valid := range []string{"prepared", "applied", "selected", "rejected"} {
		status, err := ParseOfferStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, OfferStatus(valid), status)
	}

	_, err := ParseOfferStatus("pending")
	assert.Error(t, err)
	_, err = ParseOfferStatus("")
	assert.Error(t, err)
}

func TestOffersFromTable(t *testing.T) {
	table := NewTable(EventHeaders)
	table.Append("레뷰", "호텔 숙박권", "2025-08-01", "2025-08-15", "2025-08-20", "applied", "https://example.com/c/1")

	offers := OffersFromTable(table)
	require.Len(t, offers, 1)
	assert.Equal(t, StatusApplied, offers[0].Status)
	assert.Equal(t, "호텔 숙박권", offers[0].Offer)

	assert.Equal(t, table.Rows[0], offers[0].Cells(), "row round-trips through the struct")
}
