package models

// Rating bounds shared by testimonials and reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a quote shown on the public home page.
// Rating is clamped client-side to [MinRating, MaxRating]; the server
// remains the validation authority.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=120" label:"Name"`
	Role     string `json:"role,omitempty"`
	Content  string `json:"content" validate:"required" label:"Content"`
	Rating   int    `json:"rating" validate:"range=1-5" label:"Rating"`
	Initials string `json:"initials,omitempty"`
}

// EntityID implements resourcectl.Entity.
func (t Testimonial) EntityID() string { return t.ID }

// ClampRating snaps v into the valid rating range.
func ClampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}
