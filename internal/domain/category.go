package domain

// Category is a storefront grouping for products. Categories are created by
// seed data or admin writes and are immutable in practice.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "category"
}
