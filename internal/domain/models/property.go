package models

// Property is a single listing record as returned by the backend API.
//
// The ID is assigned by the server and immutable; the client never
// fabricates one. Location and Category hold the display names of the
// related Location and PropertyType records, which is what the public
// filter pages match against.
type Property struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required,max=200" label:"Title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Location    string  `json:"location" validate:"required" label:"Location"`
	Category    string  `json:"category" validate:"required" label:"Property type"`
	Address     string  `json:"address,omitempty"`
	Bedrooms    int     `json:"bedrooms,omitempty"`
	Bathrooms   int     `json:"bathrooms,omitempty"`
	AreaSqft    int     `json:"area_sqft,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" validate:"httpurl" label:"Image URL"`
	Featured    bool    `json:"featured"`
}

// EntityID implements resourcectl.Entity.
func (p Property) EntityID() string { return p.ID }
