package entity

import "github.com/google/uuid"

type Theater struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Location string    `db:"location"`
}
