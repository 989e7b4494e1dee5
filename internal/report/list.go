package report

import (
	"bytes"
	"html/template"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// ListActions supplies the surface-specific targets for the per-item view
// and delete controls.
type ListActions struct {
	ViewURL   func(id int64) string
	DeleteURL func(id int64) string
}

var listItemTmpl = template.Must(template.New("reportListItem").Parse(`<li class="bg-white p-4 rounded-lg shadow-sm border flex justify-between items-center">
    <div>
        <p class="font-semibold text-gray-700">Report from {{.Date}}</p>
        <p class="text-sm text-gray-500">Location: Lat {{.Lat}}, Lon {{.Lon}}</p>
    </div>
    <div class="flex space-x-2">
        <button class="view-report-btn text-sm bg-blue-100 text-blue-700 px-3 py-1 rounded hover:bg-blue-200" data-report-id="{{.ID}}" data-action="{{.ViewURL}}">{{.ViewLabel}}</button>
        <button class="delete-report-btn text-sm bg-red-100 text-red-700 px-3 py-1 rounded hover:bg-red-200" data-report-id="{{.ID}}" data-action="{{.DeleteURL}}">{{.DeleteLabel}}</button>
    </div>
</li>`))

// RenderSavedReports formats the saved-report collection. The report date
// comes out of the decoded payload regardless of whether report_data arrived
// string-encoded or as a document.
func RenderSavedReports(reports []models.SavedReport, actions ListActions, viewLabel, deleteLabel string) template.HTML {
	if len(reports) == 0 {
		return `<p class="text-gray-600">You haven't saved any field reports yet.</p>`
	}
	if viewLabel == "" {
		viewLabel = "View"
	}
	if deleteLabel == "" {
		deleteLabel = "Delete"
	}

	var buf bytes.Buffer
	buf.WriteString(`<ul class="space-y-3">`)
	for _, r := range reports {
		date := InvalidDate
		if r.Report.Report != nil {
			date = FormatDate(r.Report.Report.GeneratedAt)
		}
		item := struct {
			ID          int64
			Date        string
			Lat, Lon    string
			ViewURL     string
			DeleteURL   string
			ViewLabel   string
			DeleteLabel string
		}{
			ID:          r.ID,
			Date:        date,
			Lat:         FormatNumber(r.Latitude, 2),
			Lon:         FormatNumber(r.Longitude, 2),
			ViewLabel:   viewLabel,
			DeleteLabel: deleteLabel,
		}
		if actions.ViewURL != nil {
			item.ViewURL = actions.ViewURL(r.ID)
		}
		if actions.DeleteURL != nil {
			item.DeleteURL = actions.DeleteURL(r.ID)
		}
		listItemTmpl.Execute(&buf, item)
	}
	buf.WriteString(`</ul>`)
	return template.HTML(buf.String())
}
