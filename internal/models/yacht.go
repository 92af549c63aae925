package models

import "time"

// Yacht represents a vessel in the charter fleet.
type Yacht struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Type        string    `json:"type" validate:"required"`
	Length      float64   `json:"length" validate:"gt=0"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	Cabins      int       `json:"cabins" validate:"gte=0"`
	Bathrooms   int       `json:"bathrooms" validate:"gte=0"`
	Year        int       `json:"year" validate:"gte=1900"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	PricePerDay float64   `json:"pricePerDay" validate:"required,gt=0"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Features    []string  `json:"features" gorm:"serializer:json"`
	Available   bool      `json:"available"`
	Location    string    `json:"location" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// YachtFilter narrows catalog listings. Zero values mean "no constraint".
type YachtFilter struct {
	Type        string
	MinCapacity int
	MaxPrice    float64
	Location    string
}

// Matches reports whether the yacht satisfies every set constraint.
func (f YachtFilter) Matches(y Yacht) bool {
	if f.Type != "" && y.Type != f.Type {
		return false
	}
	if f.MinCapacity > 0 && y.Capacity < f.MinCapacity {
		return false
	}
	if f.MaxPrice > 0 && y.PricePerDay > f.MaxPrice {
		return false
	}
	if f.Location != "" && y.Location != f.Location {
		return false
	}
	return true
}
