package models

import "time"

// User is the minimal account identity: the client signs in with a display
// name and everything else hangs off the numeric id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
