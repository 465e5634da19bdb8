package metrics

import (
	"sort"
	"time"

	"github.com/seongmin-k/biffplan/internal/model"
)

// DaySeparatorMarker is the reserved place-name value used for visual
// separator rows in the sheet. Such rows carry no visit.
const DaySeparatorMarker = "---"

// BucketSpend is the summed total cost of one bucket.
type BucketSpend struct {
	Bucket Bucket
	Total  float64
}

// DayGroup is one calendar day's visits, ordered by visit time.
type DayGroup struct {
	Date   time.Time
	Visits []model.Visit
}

// ArrivalDelta is the mean visit−booking gap in minutes over rows where
// both times parse. Positive means late.
type ArrivalDelta struct {
	MeanMinutes float64
	Count       int
}

// Late reports whether the mean arrival was after the booked time.
func (a ArrivalDelta) Late() bool { return a.MeanMinutes > 0 }

// Retrospect is the derived view of one year's visit log.
type Retrospect struct {
	Arrival       *ArrivalDelta
	Visits        []model.Visit
	SpendByBucket []BucketSpend
	Days          []DayGroup
	TotalPlaces   int
	TotalSpend    float64
}

// Summarize computes the derived metrics over the raw visit rows. It is a
// pure function: filtering, numeric coercion and grouping all happen here,
// and the input slice is not mutated.
func Summarize(visits []model.Visit) *Retrospect {
	kept := make([]model.Visit, 0, len(visits))
	for _, v := range visits {
		if v.PlaceName == "" || v.PlaceName == DaySeparatorMarker {
			continue
		}
		kept = append(kept, v)
	}

	r := &Retrospect{
		Visits:      kept,
		TotalPlaces: len(kept),
	}

	spend := make(map[Bucket]float64)
	for _, v := range kept {
		total := v.TotalCost()
		r.TotalSpend += total
		spend[BucketFor(v.Category)] += total
	}
	r.SpendByBucket = sortedSpend(spend)
	r.Days = groupByDay(kept)
	r.Arrival = arrivalDelta(kept)
	return r
}

// sortedSpend orders buckets by sum descending, bucket name breaking ties
// so output is deterministic.
func sortedSpend(spend map[Bucket]float64) []BucketSpend {
	out := make([]BucketSpend, 0, len(spend))
	for b, total := range spend {
		out = append(out, BucketSpend{Bucket: b, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Bucket < out[j].Bucket
	})
	return out
}

// groupByDay buckets rows with a parseable visit date by calendar date.
// Rows with an unparsable date are excluded from day views entirely; they
// still count toward the overall sums above. Within a day, rows sort by
// parsed visit time with unparsable times after all parsable ones, stable
// otherwise.
func groupByDay(visits []model.Visit) []DayGroup {
	byDate := make(map[time.Time][]model.Visit)
	for _, v := range visits {
		d, ok := model.ParseVisitDate(v.VisitDate)
		if !ok {
			continue
		}
		byDate[d] = append(byDate[d], v)
	}

	days := make([]DayGroup, 0, len(byDate))
	for d, vs := range byDate {
		sort.SliceStable(vs, func(i, j int) bool {
			ti, iOK := model.ParseClock(vs[i].VisitTime)
			tj, jOK := model.ParseClock(vs[j].VisitTime)
			if iOK != jOK {
				return iOK
			}
			if !iOK {
				return false
			}
			return ti < tj
		})
		days = append(days, DayGroup{Date: d, Visits: vs})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// arrivalDelta averages visit−booking minutes over rows where both clock
// cells parse. Nil when no row qualifies.
func arrivalDelta(visits []model.Visit) *ArrivalDelta {
	var sum, count int
	for _, v := range visits {
		visit, vOK := model.ParseClock(v.VisitTime)
		booking, bOK := model.ParseClock(v.BookingTime)
		if !vOK || !bOK {
			continue
		}
		sum += visit - booking
		count++
	}
	if count == 0 {
		return nil
	}
	return &ArrivalDelta{
		MeanMinutes: float64(sum) / float64(count),
		Count:       count,
	}
}
