package models

import (
	"time"
)

// PriceRange is the advertised price window for an exhibition. Min should
// match the cheapest available ticket type; the seed data keeps them in sync.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Organizer struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TicketType struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Available     bool     `json:"available"`
	Benefits      []string `json:"benefits"`
}

type Exhibition struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Subtitle        string       `json:"subtitle"`
	Description     string       `json:"description"`
	FullDescription string       `json:"fullDescription,omitempty"`
	Venue           string       `json:"venue"`
	VenueAddress    string       `json:"venueAddress"`
	City            string       `json:"city"`
	Category        string       `json:"category"`
	StartDate       time.Time    `json:"startDate"`
	EndDate         time.Time    `json:"endDate"`
	Timing          string       `json:"timing"`
	PriceRange      PriceRange   `json:"priceRange"`
	Tickets         []TicketType `json:"tickets"`
	Images          []string     `json:"images"`
	Featured        bool         `json:"featured"`
	Organizer       Organizer    `json:"organizer"`
	FAQs            []FAQ        `json:"faqs"`
	Rating          float64      `json:"rating"`
	Reviews         int          `json:"reviews"`
}

// TicketTypeByID returns the ticket type with the given ID, or nil.
func (e *Exhibition) TicketTypeByID(id string) *TicketType {
	for i := range e.Tickets {
		if e.Tickets[i].ID == id {
			return &e.Tickets[i]
		}
	}
	return nil
}
