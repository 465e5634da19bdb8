package metrics

import (
	"testing"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		category string
		want     Bucket
	}{
		{"카페", BucketFood},
		{"식당", BucketFood},
		{"택시", BucketTransport},
		{"영화제", BucketCulture},
		{"숙소", BucketLodging},
		{"방탈출", BucketOther},
		{"", BucketOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.category), tt.category)
	}
}

func TestSummarize_FilterAndTotals(t *testing.T) {
	r := Summarize([]model.Visit{
		{PlaceName: "모모스커피", Category: "카페", SupportedCost: "1000", ExtraCost: "abc"},
		{PlaceName: DaySeparatorMarker},
		{PlaceName: ""},
		{PlaceName: "광안리회센터", Category: "식당", SupportedCost: "40,000", ExtraCost: "5,000"},
	})

	assert.Equal(t, 2, r.TotalPlaces, "separator and empty rows filtered")
	assert.Equal(t, float64(46000), r.TotalSpend, "non-numeric cost coerces to zero")
}

func TestSummarize_SpendByBucket(t *testing.T) {
	r := Summarize([]model.Visit{
		{PlaceName: "a", Category: "카페", SupportedCost: "1000"},
		{PlaceName: "b", Category: "식당", SupportedCost: "9000"},
		{PlaceName: "c", Category: "택시", SupportedCost: "30000"},
		{PlaceName: "d", Category: "이상한것", SupportedCost: "500"},
	})

	require.Len(t, r.SpendByBucket, 3)
	assert.Equal(t, BucketTransport, r.SpendByBucket[0].Bucket, "ordered descending by sum")
	assert.Equal(t, float64(30000), r.SpendByBucket[0].Total)
	assert.Equal(t, BucketFood, r.SpendByBucket[1].Bucket)
	assert.Equal(t, float64(10000), r.SpendByBucket[1].Total)
	assert.Equal(t, BucketOther, r.SpendByBucket[2].Bucket)
}

func TestSummarize_DayGrouping(t *testing.T) {
	r := Summarize([]model.Visit{
		{PlaceName: "늦은곳", VisitDate: "2024-09-20", VisitTime: "19:00"},
		{PlaceName: "이른곳", VisitDate: "2024-09-20", VisitTime: "09:30"},
		{PlaceName: "시간없음", VisitDate: "2024-09-20", VisitTime: "오후쯤"},
		{PlaceName: "다음날", VisitDate: "2024-09-21", VisitTime: "11:00"},
		{PlaceName: "날짜없음", VisitDate: "언젠가", VisitTime: "10:00", SupportedCost: "7000"},
	})

	require.Len(t, r.Days, 2, "unparsable date row appears in neither group")
	assert.Equal(t, 20, r.Days[0].Date.Day())
	assert.Equal(t, 21, r.Days[1].Date.Day())

	day1 := r.Days[0].Visits
	require.Len(t, day1, 3)
	assert.Equal(t, "이른곳", day1[0].PlaceName, "sorted by parsed visit time")
	assert.Equal(t, "늦은곳", day1[1].PlaceName)
	assert.Equal(t, "시간없음", day1[2].PlaceName, "unparsable time sorts last")

	// Excluded from day views but still counted in overall sums.
	assert.Equal(t, 5, r.TotalPlaces)
	assert.Equal(t, float64(7000), r.TotalSpend)
}

func TestSummarize_DayGroupingStableForUnparsableTimes(t *testing.T) {
	r := Summarize([]model.Visit{
		{PlaceName: "첫째", VisitDate: "2024-09-20", VisitTime: "?"},
		{PlaceName: "둘째", VisitDate: "2024-09-20", VisitTime: ""},
		{PlaceName: "셋째", VisitDate: "2024-09-20", VisitTime: "깜빡"},
	})

	require.Len(t, r.Days, 1)
	got := make([]string, 0, 3)
	for _, v := range r.Days[0].Visits {
		got = append(got, v.PlaceName)
	}
	assert.Equal(t, []string{"첫째", "둘째", "셋째"}, got, "input order preserved")
}

func TestSummarize_ArrivalDelta(t *testing.T) {
	t.Run("late by fifteen", func(t *testing.T) {
		r := Summarize([]model.Visit{
			{PlaceName: "a", BookingTime: "10:00", VisitTime: "10:15"},
		})
		require.NotNil(t, r.Arrival)
		assert.Equal(t, float64(15), r.Arrival.MeanMinutes)
		assert.True(t, r.Arrival.Late())
		assert.Equal(t, 1, r.Arrival.Count)
	})

	t.Run("mean over measurable rows only", func(t *testing.T) {
		r := Summarize([]model.Visit{
			{PlaceName: "a", BookingTime: "10:00", VisitTime: "10:15"}, // +15
			{PlaceName: "b", BookingTime: "12:00", VisitTime: "11:55"}, // -5
			{PlaceName: "c", BookingTime: "", VisitTime: "13:00"},      // skipped
			{PlaceName: "d", BookingTime: "몰라", VisitTime: "14:00"},    // skipped
		})
		require.NotNil(t, r.Arrival)
		assert.Equal(t, 2, r.Arrival.Count)
		assert.InDelta(t, 5.0, r.Arrival.MeanMinutes, 0.0001)
	})

	t.Run("nil when nothing measurable", func(t *testing.T) {
		r := Summarize([]model.Visit{{PlaceName: "a"}})
		assert.Nil(t, r.Arrival)
	})
}

func TestSummarize_EmptyInput(t *testing.T) {
	r := Summarize(nil)
	assert.Equal(t, 0, r.TotalPlaces)
	assert.Empty(t, r.Days)
	assert.Empty(t, r.SpendByBucket)
	assert.Nil(t, r.Arrival)
}
