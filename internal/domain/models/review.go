package models

// Review is visitor feedback on a single property. Reviews arrive through
// the backend unapproved and only show on the public detail page once an
// admin approves them.
type Review struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id" validate:"required" label:"Property"`
	Author     string `json:"author" validate:"required,max=120" label:"Author"`
	Content    string `json:"content" validate:"required" label:"Content"`
	Rating     int    `json:"rating" validate:"range=1-5" label:"Rating"`
	Approved   bool   `json:"approved"`
}

// EntityID implements resourcectl.Entity.
func (r Review) EntityID() string { return r.ID }
