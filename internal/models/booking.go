package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ContactDetails carries the details step of either wizard flow. Visitor
// bookings use Name/Email/Phone; stall bookings use the company fields with
// ContactPerson as the named contact.
type ContactDetails struct {
	Name               string `json:"name,omitempty"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	CompanyName        string `json:"companyName,omitempty"`
	ContactPerson      string `json:"contactPerson,omitempty"`
	GSTNumber          string `json:"gstNumber,omitempty"`
	Website            string `json:"website,omitempty"`
	BusinessType       string `json:"businessType,omitempty"`
	ProductDescription string `json:"productDescription,omitempty"`
}

// Booking is the record written when a wizard reaches its terminal step.
// The price breakdown is frozen at purchase time; later catalog changes
// never alter a confirmed booking.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	Ref             string    `bun:"ref,pk" json:"ref"`
	Flow            string    `bun:"flow,notnull" json:"flow"`
	ExhibitionID    string    `bun:"exhibition_id,notnull" json:"exhibitionId"`
	ExhibitionTitle string    `bun:"exhibition_title" json:"exhibitionTitle"`
	ItemID          string    `bun:"item_id,notnull" json:"itemId"`
	ItemName        string    `bun:"item_name" json:"itemName"`
	AddonIDs        []string  `bun:"addon_ids" json:"addonIds,omitempty"`
	Quantity        int       `bun:"quantity" json:"quantity,omitempty"`
	VisitDate       time.Time `bun:"visit_date,nullzero" json:"visitDate,omitempty"`

	Name               string `bun:"name" json:"name"`
	Email              string `bun:"email,notnull" json:"email"`
	Phone              string `bun:"phone" json:"phone"`
	CompanyName        string `bun:"company_name,nullzero" json:"companyName,omitempty"`
	GSTNumber          string `bun:"gst_number,nullzero" json:"gstNumber,omitempty"`
	Website            string `bun:"website,nullzero" json:"website,omitempty"`
	BusinessType       string `bun:"business_type,nullzero" json:"businessType,omitempty"`
	ProductDescription string `bun:"product_description,nullzero" json:"productDescription,omitempty"`

	Subtotal       float64 `bun:"subtotal,notnull" json:"subtotal"`
	ConvenienceFee float64 `bun:"convenience_fee" json:"convenienceFee,omitempty"`
	Tax            float64 `bun:"tax,notnull" json:"tax"`
	Total          float64 `bun:"total,notnull" json:"total"`

	PaymentMethod string    `bun:"payment_method,notnull" json:"paymentMethod"`
	TransactionID string    `bun:"transaction_id,nullzero" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"createdAt"`
}

const (
	FlowTicket = "ticket"
	FlowStall  = "stall"
)
