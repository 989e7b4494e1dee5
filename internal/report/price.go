package report

import (
	"bytes"
	"html/template"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

const defaultPriceNote = "Based on recent prices in your district."

var priceTmpl = template.Must(template.New("price").Parse(`<div class="text-left p-4 w-full">
    <h3 class="text-2xl font-bold text-emerald-800 mb-4">Revenue Estimate</h3>
    <div class="space-y-3">
        <p><strong>Crop:</strong> {{.Crop}}</p>
        <p><strong>Location:</strong> {{.Location}}</p>
        <p><strong>Field Area:</strong> {{.Area}} acres</p>
        <hr class="my-2">
        <p><strong>Avg. Mandi Price:</strong> ₹ {{.MandiPrice}} / Quintal</p>
        {{if .IsStale}}<p class="text-xs text-orange-600 bg-orange-100 p-2 rounded-md my-2">Note: Live market data is currently unavailable. This price is from {{.StaleDate}}.</p>{{else}}<p class="text-xs text-green-700">{{.Note}}</p>{{end}}
        <p><strong>Estimated Yield:</strong> ~{{.Yield}} Quintals / Acre</p>
        <hr class="my-2">
        <div class="bg-green-100 p-4 rounded-lg text-center">
            <p class="text-lg font-semibold text-green-800">Total Estimated Revenue</p>
            <p class="text-3xl font-bold text-green-700">{{.Revenue}}</p>
        </div>
        <p class="text-xs text-center text-gray-500 mt-2">*This is an estimate. Actual revenue depends on final yield, quality, and real-time market conditions.</p>
    </div>
</div>`))

// RenderPriceEstimate formats the revenue estimate. Price, yield and area
// appear exactly as the backend sent them; only the revenue total gets
// Indian rupee grouping. A stale payload shows a dated warning instead of
// the note.
func RenderPriceEstimate(result *models.PriceEstimate) template.HTML {
	if result == nil {
		return ""
	}

	note := result.Note
	if note == "" {
		note = defaultPriceNote
	}

	data := struct {
		Crop       string
		Location   string
		Area       string
		MandiPrice string
		IsStale    bool
		StaleDate  string
		Note       string
		Yield      string
		Revenue    string
	}{
		Crop:       result.Crop,
		Location:   result.Location,
		Area:       result.AreaAcres.String(),
		MandiPrice: result.AverageMandiPrice.String(),
		IsStale:    result.IsStale,
		StaleDate:  result.StaleDate,
		Note:       note,
		Yield:      result.EstimatedYieldQPA.String(),
		Revenue:    FormatINR(result.TotalEstimatedRevenue),
	}

	var buf bytes.Buffer
	if err := priceTmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
