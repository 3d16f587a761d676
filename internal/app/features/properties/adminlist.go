// internal/app/features/properties/adminlist.go
package properties

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dwellhub/dwellhub/internal/app/api"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
)

// ServeList displays the admin list of properties.
//
// The controller keeps the previous rows when a refresh fails, so a flaky
// backend degrades to stale data plus an error banner instead of a blank
// page. Only a failure with nothing cached at all becomes an error page.
func (h *AdminHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loadErr := h.Ctrl.Load(ctx)
	items := h.Ctrl.Items()

	if loadErr != nil && len(items) == 0 {
		h.ErrLog.LogServerError(w, r, "list properties failed", loadErr,
			"Could not load properties.", "/admin/properties")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Properties", "/admin/properties"),
		Items:  items,
	}
	if loadErr != nil {
		data.LoadError = api.UserMessage(loadErr)
	}

	templates.Render(w, r, "properties_list", data)
}

// ensureLoaded fetches the collection if nothing is cached yet. Edit and
// delete screens can be hit directly by URL before the list page ever
// loaded.
func (h *AdminHandler) ensureLoaded(ctx context.Context) error {
	if len(h.Ctrl.Items()) > 0 {
		return nil
	}
	return h.Ctrl.Load(ctx)
}
