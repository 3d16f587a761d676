// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/admin/properties").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit", "/delete", "/new").
	// These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string

	// PreserveQueryParam is an optional query parameter to preserve in the fallback URL.
	// For example, "location" would check for a location parameter and append it
	// to the fallback.
	PreserveQueryParam string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), optionally validates the prefix,
// and excludes specified subpaths to prevent redirect loops.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.PropertiesBackURL)
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	// Try query parameter first, then form value
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	// Validate against allowed prefix if specified
	if ret != "" {
		valid := true

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		// Check excluded subpaths
		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	// Build fallback URL, optionally preserving a query parameter
	fallback := opts.Fallback
	if opts.PreserveQueryParam != "" {
		param := query.Get(r, opts.PreserveQueryParam)
		if param == "" {
			param = strings.TrimSpace(r.FormValue(opts.PreserveQueryParam))
		}
		if param != "" && param != "all" {
			if strings.Contains(fallback, "?") {
				fallback += "&" + opts.PreserveQueryParam + "=" + param
			} else {
				fallback += "?" + opts.PreserveQueryParam + "=" + param
			}
		}
	}

	return fallback
}

// Common back URL configurations for reuse across packages.
var (
	// PropertiesBackURL returns options for admin property pages.
	PropertiesBackURL = BackURLOptions{
		AllowedPrefix:      "/admin/properties",
		ExcludedSubpaths:   []string{"/edit", "/delete", "/new"},
		Fallback:           "/admin/properties",
		PreserveQueryParam: "location",
	}

	// LocationsBackURL returns options for admin location pages.
	LocationsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/locations",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/locations",
	}

	// PropertyTypesBackURL returns options for admin property-type pages.
	PropertyTypesBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/property-types",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/property-types",
	}

	// StatisticsBackURL returns options for admin statistic pages.
	StatisticsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/statistics",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/statistics",
	}

	// TestimonialsBackURL returns options for admin testimonial pages.
	TestimonialsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/testimonials",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/testimonials",
	}

	// ReviewsBackURL returns options for admin review pages.
	ReviewsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/reviews",
		ExcludedSubpaths: []string{"/delete"},
		Fallback:         "/admin/reviews",
	}
)
