package model

// Overview is the key/value trip header sheet. The date strings are fixed
// festival dates and stay disabled in every editing surface.
type Overview struct {
	Title     string
	Purpose   string
	StartDate string
	EndDate   string
}

// Defaults applied when a key is absent from the sheet.
const (
	DefaultTripTitle   = "제30회 부산국제영화제(BIFF) 커플 여행"
	DefaultTripPurpose = "BIFF 영화 관람, 부산 관광 및 커플 여행"
	DefaultStartDate   = "2025-09-18"
	DefaultEndDate     = "2025-09-23"
)

// OverviewFromTable reads the key/value pairs, falling back to defaults for
// absent keys. A table without key/value columns yields all defaults rather
// than an error so the rest of the view stays functional.
func OverviewFromTable(t *Table) Overview {
	o := Overview{
		Title:     DefaultTripTitle,
		Purpose:   DefaultTripPurpose,
		StartDate: DefaultStartDate,
		EndDate:   DefaultEndDate,
	}
	if t == nil || t.Require(SheetOverview, ColKey, ColValue) != nil {
		return o
	}
	for i := range t.Rows {
		switch t.Get(i, ColKey) {
		case "title":
			o.Title = t.Get(i, ColValue)
		case "purpose":
			o.Purpose = t.Get(i, ColValue)
		case "start_date":
			o.StartDate = t.Get(i, ColValue)
		case "end_date":
			o.EndDate = t.Get(i, ColValue)
		}
	}
	return o
}

// Table renders the overview back to its sheet shape. Keys are written in a
// fixed order so saves are diffable in the spreadsheet history.
func (o Overview) Table() *Table {
	t := NewTable(OverviewHeaders)
	t.Append("title", o.Title)
	t.Append("purpose", o.Purpose)
	t.Append("start_date", o.StartDate)
	t.Append("end_date", o.EndDate)
	return t
}
