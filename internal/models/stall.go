package models

// StallType is a fixed stall offering for the exhibitor flow.
type StallType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Size        string   `json:"size"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Available   bool     `json:"available"`
}

// AddOn is a flat-priced extra an exhibitor can attach to a stall booking.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
