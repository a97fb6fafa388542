package domain

type Category struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null" validate:"gte=0"`
	Description string  `json:"description,omitempty" gorm:"type:text"`

	Equipment []Equipment `json:"equipment,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Room struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	CategoryID int64 `json:"category_id" gorm:"not null;index" validate:"required"`
	Floor      int   `json:"floor" gorm:"not null"`
	RoomCount  int   `json:"room_count" gorm:"not null" validate:"gte=1"`
	BedCount   int   `json:"bed_count" gorm:"not null;index" validate:"gte=1"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Item struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`
}

// Equipment links a Category to an Item.
type Equipment struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	CategoryID int64 `json:"category_id" gorm:"not null;index"`
	ItemID     int64 `json:"item_id" gorm:"not null;index"`

	Item *Item `json:"item,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (Equipment) TableName() string { return "equipment" }
