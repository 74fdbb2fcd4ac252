package entity

import "github.com/google/uuid"

type Movie struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Overview  string    `db:"overview"`
	Rating    float64   `db:"rating"`
	Genre     string    `db:"genre"`
	PosterURL string    `db:"poster_url"`
}
