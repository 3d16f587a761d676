package models

// PropertyType is a listing category (e.g. "PG", "Villa", "Apartment").
type PropertyType struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=80" label:"Name"`
	Description string `json:"description,omitempty"`
}

// EntityID implements resourcectl.Entity.
func (t PropertyType) EntityID() string { return t.ID }
