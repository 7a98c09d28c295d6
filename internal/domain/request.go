package domain

// ItemSnapshot is an immutable copy of a product's id/name/price captured at
// inquiry time. Later product edits must not change a stored request, so the
// snapshot is a value, not a reference to the product row.
type ItemSnapshot struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Request is a customer inquiry: contact details plus the serialized sequence
// of item snapshots the customer asked about. A request is written exactly
// once and never mutated.
type Request struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:64;not null" json:"customer_phone"`
	// ProductList is the item snapshot sequence at rest, encoded by the
	// inquiry codec.
	ProductList string `gorm:"type:text;not null" json:"-"`
}

// TableName Specify table name
func (Request) TableName() string {
	return "request"
}
