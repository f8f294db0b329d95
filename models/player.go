package models

import "time"

// Player представляет игрока лиги. Рейтинг не хранится в БД:
// он всегда пересчитывается по полной истории матчей.
type Player struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	State     *string   `json:"state,omitempty" db:"state"`
	Country   *string   `json:"country,omitempty" db:"country"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	EmblemKey *string `json:"-" db:"emblem_key"`
	EmblemURL *string `json:"emblem_url,omitempty" db:"-"`
}
