package model

// Film holds the page-level fields of one festival film. Every showing of
// the film shares these.
type Film struct {
	Title    string
	Director string
	Country  string
	Runtime  string
	Format   string
	Synopsis string
}

// Showing is one screening block from a film detail page.
type Showing struct {
	Date        string
	Time        string
	Venue       string
	BookingCode string
	Notes       string
}

// ScheduleRow is one (film, showing) pair, the unit stored in the movies
// sheet. A film that publishes no showings still yields one row with the
// showing fields empty so it surfaces for manual follow-up.
type ScheduleRow struct {
	Film
	Showing
	Booked string
}

// Cells renders the row in movies-sheet column order.
func (r ScheduleRow) Cells() []string {
	return []string{
		r.Title, r.Director, r.Country, r.Runtime, r.Format, r.Synopsis,
		r.Date, r.Time, r.Venue, r.BookingCode, r.Booked,
	}
}

// ScheduleRows expands a film and its showings into sheet rows. Zero
// showings produce exactly one film-only row, never zero rows.
func ScheduleRows(film Film, showings []Showing) []ScheduleRow {
	if len(showings) == 0 {
		return []ScheduleRow{{Film: film}}
	}
	rows := make([]ScheduleRow, 0, len(showings))
	for _, s := range showings {
		rows = append(rows, ScheduleRow{Film: film, Showing: s})
	}
	return rows
}
