package domain

// Product is a catalog item served to storefront clients. CategoryID is a
// weak reference: it may be null or point at a category that no longer
// exists, and neither case is an error.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	PicURL      *string   `gorm:"type:text" json:"pic_url"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	CategoryID  *int64    `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "product"
}
