package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the profile sub-record attached to a book. It is created once,
// at book-creation time, and is never updated or deleted on its own; books
// own their author reference exclusively.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Country   string    `json:"country" db:"country"`
	BirthDate time.Time `json:"birthDate" db:"birth_date"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
