package models

// Location is an area/neighborhood record that properties reference by
// title. The backend rejects deleting a location that is still referenced
// by a property; that surfaces to the admin as a conflict.
type Location struct {
	ID                string `json:"id"`
	Title             string `json:"title" validate:"required,max=120" label:"Title"`
	Description       string `json:"description,omitempty"`
	GoogleMapURL      string `json:"google_map_url,omitempty" validate:"httpurl" label:"Google Maps URL"`
	ImportantLocation bool   `json:"important_location"`
}

// EntityID implements resourcectl.Entity.
func (l Location) EntityID() string { return l.ID }
