package home

import (
	"context"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/htmlsanitize"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// DefaultFeaturedLimit caps the featured strip when config doesn't say
// otherwise.
const DefaultFeaturedLimit = 6

type propertyLister interface {
	List(ctx context.Context) ([]models.Property, error)
}

type statisticLister interface {
	List(ctx context.Context) ([]models.Statistic, error)
}

type testimonialLister interface {
	List(ctx context.Context) ([]models.Testimonial, error)
}

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Properties    propertyLister
	Statistics    statisticLister
	Testimonials  testimonialLister
	FeaturedLimit int
	Log           *zap.Logger
	ErrLog        *uierrors.ErrorLogger
}

func NewHandler(props propertyLister, stats statisticLister, tms testimonialLister, featuredLimit int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if featuredLimit <= 0 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &Handler{
		Properties:    props,
		Statistics:    stats,
		Testimonials:  tms,
		FeaturedLimit: featuredLimit,
		Log:           logger,
		ErrLog:        errLog,
	}
}

// testimonialVM is one quote card on the landing page.
type testimonialVM struct {
	Name     string
	Role     string
	Content  template.HTML
	Rating   int
	Initials string
}

type homeData struct {
	viewdata.BaseVM
	Featured     []models.Property
	Statistics   []models.Statistic
	Testimonials []testimonialVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the landing page: featured listings, headline
// statistics, and testimonials. Statistics and testimonials degrade to
// empty sections if their fetch fails; a property fetch failure is a hard
// error because the page is pointless without listings.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	props, err := h.Properties.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home: list properties failed", err,
			"Could not load listings right now.", "/")
		return
	}

	data := homeData{
		BaseVM:   viewdata.NewBaseVM(r, "Welcome", "/"),
		Featured: PickFeatured(props, h.FeaturedLimit),
	}

	if stats, err := h.Statistics.List(ctx); err != nil {
		h.Log.Warn("home: list statistics failed", zap.Error(err))
	} else {
		data.Statistics = SortStatistics(stats)
	}

	if tms, err := h.Testimonials.List(ctx); err != nil {
		h.Log.Warn("home: list testimonials failed", zap.Error(err))
	} else {
		for _, t := range tms {
			data.Testimonials = append(data.Testimonials, testimonialVM{
				Name:     t.Name,
				Role:     t.Role,
				Content:  htmlsanitize.SanitizeToHTML(t.Content),
				Rating:   models.ClampRating(t.Rating),
				Initials: InitialsFor(t),
			})
		}
	}

	templates.Render(w, r, "home", data)
}

// PickFeatured keeps featured listings in server order, capped at limit.
func PickFeatured(props []models.Property, limit int) []models.Property {
	out := make([]models.Property, 0, limit)
	for _, p := range props {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// SortStatistics orders statistics by their display position, stable so
// ties keep server order.
func SortStatistics(stats []models.Statistic) []models.Statistic {
	out := make([]models.Statistic, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// InitialsFor returns the testimonial's explicit initials, falling back to
// the first letters of the name.
func InitialsFor(t models.Testimonial) string {
	if t.Initials != "" {
		return t.Initials
	}
	var b strings.Builder
	for _, word := range strings.Fields(t.Name) {
		b.WriteRune(unicode.ToUpper([]rune(word)[0]))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
