package domain

type Account struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255" json:"name"`
	Balance float64 `gorm:"not null" json:"balance"`
}
