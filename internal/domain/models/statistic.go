package models

// Statistic is a headline figure shown on the public home page
// (e.g. "1200+ Happy Tenants"). Order controls display position.
type Statistic struct {
	ID    string `json:"id"`
	Label string `json:"label" validate:"required,max=120" label:"Label"`
	Value string `json:"value" validate:"required,max=40" label:"Value"`
	Order int    `json:"order"`
}

// EntityID implements resourcectl.Entity.
func (s Statistic) EntityID() string { return s.ID }
