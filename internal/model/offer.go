package model

import "fmt"

// OfferStatus is the lifecycle of a campaign application.
type OfferStatus string

// Offer statuses, in lifecycle order.
const (
	StatusPrepared OfferStatus = "prepared"
	StatusApplied  OfferStatus = "applied"
	StatusSelected OfferStatus = "selected"
	StatusRejected OfferStatus = "rejected"
)

// ParseOfferStatus validates a raw status cell.
func ParseOfferStatus(s string) (OfferStatus, error) {
	switch OfferStatus(s) {
	case StatusPrepared, StatusApplied, StatusSelected, StatusRejected:
		return OfferStatus(s), nil
	}
	return "", fmt.Errorf("unknown offer status %q (want prepared, applied, selected or rejected)", s)
}

// Offer is one campaign-style record in the events sheet.
type Offer struct {
	Platform   string
	Offer      string
	OpenDate   string
	CloseDate  string
	ResultDate string
	Status     OfferStatus
	Link       string
}

// OffersFromTable reads the events sheet. Rows with an unrecognized status
// keep the raw string untouched; validation happens only on transitions.
func OffersFromTable(t *Table) []Offer {
	if t == nil {
		return nil
	}
	offers := make([]Offer, 0, len(t.Rows))
	for i := range t.Rows {
		offers = append(offers, Offer{
			Platform:   t.Get(i, ColPlatform),
			Offer:      t.Get(i, ColOffer),
			OpenDate:   t.Get(i, ColOpenDate),
			CloseDate:  t.Get(i, ColCloseDate),
			ResultDate: t.Get(i, ColResultDate),
			Status:     OfferStatus(t.Get(i, ColStatus)),
			Link:       t.Get(i, ColWebPage),
		})
	}
	return offers
}

// Cells renders the offer in events-sheet column order.
func (o Offer) Cells() []string {
	return []string{o.Platform, o.Offer, o.OpenDate, o.CloseDate, o.ResultDate, string(o.Status), o.Link}
}
