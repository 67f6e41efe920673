package domain

import (
	"encoding/json"
	"time"
)

// User is the credential store record. Email is stored lowercase and is
// guarded by a database-level unique index; the index, not the application
// pre-check, is what makes uniqueness hold under concurrent registrations.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:255;not null" json:"first_name"`
	LastName     string    `gorm:"size:255;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone        string    `gorm:"size:64;not null" json:"phone"`
	PasswordHash string    `gorm:"size:1024;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Todos        []Todo    `gorm:"foreignKey:UserID" json:"todos,omitempty"`
}

// MarshalJSON adds the computed full_name the original model exposed as a
// virtual column. PasswordHash stays excluded via the field tag.
func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return json.Marshal(struct {
		alias
		FullName string `json:"full_name"`
	}{alias(u), u.FirstName + " " + u.LastName})
}
