package catalog

import (
	"expo-ticketing/internal/models"
)

// Store is the read-only catalog shared by the whole service. It is built
// once at startup and never mutated afterwards, so it is safe to share
// across requests without locking.
type Store struct {
	exhibitions []models.Exhibition
	byID        map[string]int
	cities      []string
	categories  []string
	stallTypes  []models.StallType
	addons      []models.AddOn
}

func NewStore(exhibitions []models.Exhibition, cities, categories []string, stallTypes []models.StallType, addons []models.AddOn) *Store {
	byID := make(map[string]int, len(exhibitions))
	for i := range exhibitions {
		byID[exhibitions[i].ID] = i
	}
	return &Store{
		exhibitions: exhibitions,
		byID:        byID,
		cities:      cities,
		categories:  categories,
		stallTypes:  stallTypes,
		addons:      addons,
	}
}

// Exhibitions returns a fresh slice header over the catalog entries. Callers
// may reorder the returned slice; the backing entries are never written to.
func (s *Store) Exhibitions() []models.Exhibition {
	out := make([]models.Exhibition, len(s.exhibitions))
	copy(out, s.exhibitions)
	return out
}

func (s *Store) ExhibitionByID(id string) (*models.Exhibition, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("exhibition", id)
	}
	e := s.exhibitions[i]
	return &e, nil
}

func (s *Store) TicketType(exhibitionID, ticketTypeID string) (*models.TicketType, error) {
	e, err := s.ExhibitionByID(exhibitionID)
	if err != nil {
		return nil, err
	}
	t := e.TicketTypeByID(ticketTypeID)
	if t == nil {
		return nil, models.NewNotFoundError("ticket type", ticketTypeID)
	}
	return t, nil
}

func (s *Store) StallType(id string) (*models.StallType, error) {
	for i := range s.stallTypes {
		if s.stallTypes[i].ID == id {
			st := s.stallTypes[i]
			return &st, nil
		}
	}
	return nil, models.NewNotFoundError("stall type", id)
}

// AddOnsByID resolves a set of add-on IDs, failing on the first unknown one.
func (s *Store) AddOnsByID(ids []string) ([]models.AddOn, error) {
	out := make([]models.AddOn, 0, len(ids))
	for _, id := range ids {
		found := false
		for i := range s.addons {
			if s.addons[i].ID == id {
				out = append(out, s.addons[i])
				found = true
				break
			}
		}
		if !found {
			return nil, models.NewNotFoundError("add-on", id)
		}
	}
	return out, nil
}

func (s *Store) Cities() []string               { return s.cities }
func (s *Store) Categories() []string           { return s.categories }
func (s *Store) StallTypes() []models.StallType { return s.stallTypes }
func (s *Store) AddOns() []models.AddOn         { return s.addons }
