package report

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/apex/log"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// fieldLabels is the closed bilingual label table for field reports. The
// renderer refuses any language outside it.
var fieldLabels = map[string]map[string]string{
	"en": {
		"report_title":     "Field Analysis Report",
		"generated":        "Generated",
		"location_weather": "Location & Current Weather",
		"state":            "State",
		"current_weather":  "Current Weather",
		"climate_summary":  "Annual Climate Summary",
		"soil_analysis":    "Soil Analysis",
		"soil_type":        "Detected Soil Type",
		"confidence":       "Confidence",
		"recommendations":  "Crop Recommendations",
		"ai_plan":          "General AI Action Plan",
		"kharif":           "Kharif (Monsoon)",
		"rabi":             "Rabi (Winter)",
		"avg_temp":         "Avg Temp",
		"total_rain":       "Total Rain",
	},
	"hi": {
		"report_title":     "खेत विश्लेषण रिपोर्ट",
		"generated":        "उत्पन्न",
		"location_weather": "स्थान और वर्तमान मौसम",
		"state":            "राज्य",
		"current_weather":  "वर्तमान मौसम",
		"climate_summary":  "वार्षिक जलवायु सारांश",
		"soil_analysis":    "मिट्टी का विश्लेषण",
		"soil_type":        "पता लगाया गया मिट्टी का प्रकार",
		"confidence":       "आत्मविश्वास",
		"recommendations":  "फसल की सिफारिशें",
		"ai_plan":          "सामान्य एआई कार्य योजना",
		"kharif":           "खरीफ (मानसून)",
		"rabi":             "रबी (सर्दी)",
		"avg_temp":         "औसत तापमान",
		"total_rain":       "कुल वर्षा",
	},
}

var fieldTmpl = template.Must(template.New("field").Parse(`<h3 class="text-2xl font-bold text-emerald-800 mb-2">{{.T.report_title}}</h3>
<p class="text-xs text-gray-400 mb-4">{{.T.generated}}: {{.GeneratedAt}}</p>
<div class="space-y-5">
    <div class="p-3 bg-gray-50 rounded-lg"><h4 class="font-semibold text-lg text-gray-700">{{.T.location_weather}}</h4>{{.StateRow}}{{.WeatherRow}}</div>
    <div class="p-3 bg-cyan-50 rounded-lg">
        <h4 class="font-semibold text-lg text-cyan-700">{{.T.climate_summary}}</h4>
        <div class="grid grid-cols-2 gap-x-4 text-sm mt-2">
            <div>
                <p class="font-semibold">{{.T.kharif}}</p>
                {{.KharifTemp}}{{.KharifRain}}
            </div>
            <div>
                <p class="font-semibold">{{.T.rabi}}</p>
                {{.RabiTemp}}{{.RabiRain}}
            </div>
        </div>
        {{if .ClimateNote}}<p class="text-xs text-orange-600 mt-2 p-2 bg-orange-100 rounded-md">{{.ClimateNote}}</p>{{end}}
    </div>
    <div class="p-3 bg-gray-50 rounded-lg"><h4 class="font-semibold text-lg text-gray-700">{{.T.soil_analysis}}</h4>{{.Soil}}</div>
    <div class="p-3 bg-green-50 rounded-lg"><h4 class="font-semibold text-lg text-green-700">{{.T.recommendations}}</h4><p class="font-medium">{{.Crops}}</p><p class="text-sm text-gray-600 mt-1">{{.Considerations}}</p></div>
    <div>
        <h4 class="font-semibold text-lg text-gray-700 mb-2">{{.T.ai_plan}}</h4>
        <div class="space-y-3">{{.Advice}}</div>
    </div>
</div>`))

var fieldAdviceTmpl = template.Must(template.New("fieldAdvice").Parse(`<div class="bg-purple-50 border border-purple-200 p-4 rounded-lg">
    <div class="flex items-center">
        <div class="bg-purple-200 text-purple-700 rounded-full p-2 mr-3">
            <svg class="w-5 h-5" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 16h-1v-4h-1m1-4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z"></path></svg>
        </div>
        <h4 class="font-semibold text-lg text-purple-800">{{.Title}}</h4>
    </div>
    <p class="text-purple-700 mt-2 pl-12 text-sm">{{.Description}}</p>
</div>`))

// RenderFieldReport formats the full field report. The language must be a
// key of the closed bilingual table; anything else logs an error and renders
// nothing.
func RenderFieldReport(r *models.FieldReport, lang string) template.HTML {
	if r == nil {
		return ""
	}
	if lang == "" {
		lang = "en"
	}
	labels, ok := fieldLabels[lang]
	if !ok {
		log.Errorf("invalid language provided to report formatter: %s", lang)
		return ""
	}

	data := struct {
		T              map[string]string
		GeneratedAt    string
		StateRow       template.HTML
		WeatherRow     template.HTML
		KharifTemp     template.HTML
		KharifRain     template.HTML
		RabiTemp       template.HTML
		RabiRain       template.HTML
		ClimateNote    string
		Soil           template.HTML
		Crops          string
		Considerations string
		Advice         template.HTML
	}{
		T:           labels,
		GeneratedAt: FormatDate(r.GeneratedAt),
		StateRow:    listItem(labels["state"], r.Location.State, ""),
		Soil:        renderSoil(r.SoilAnalysis, labels),
		Advice:      renderFieldAdvice(r.AIAdvice),
	}

	if r.Weather != nil {
		conditions := FormatNumber(r.Weather.Temperature, 0) + "°C, " + r.Weather.Description
		data.WeatherRow = listItem(labels["current_weather"], conditions, "")
	}
	if hw := r.HistoricalWeather; hw != nil {
		data.KharifTemp = climateRow(labels["avg_temp"], hw.KharifAvgTemp, "°C")
		data.KharifRain = climateRow(labels["total_rain"], hw.KharifTotalRainfall, " mm")
		data.RabiTemp = climateRow(labels["avg_temp"], hw.RabiAvgTemp, "°C")
		data.RabiRain = climateRow(labels["total_rain"], hw.RabiTotalRainfall, " mm")
		data.ClimateNote = hw.Note
	}
	if rec := r.Recommendations; rec != nil && len(rec.RecommendedCrops) > 0 {
		data.Crops = strings.Join(rec.RecommendedCrops, ", ")
		data.Considerations = rec.Considerations
	} else {
		data.Crops = "No recommendations available."
	}

	var buf bytes.Buffer
	if err := fieldTmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// climateRow renders one seasonal metric, omitting it when the backend did
// not supply a numeric value.
func climateRow(label string, value models.Number, unit string) template.HTML {
	if !value.Valid {
		return ""
	}
	return listItem(label, FormatNumber(value, 0), unit)
}

func renderSoil(soil *models.SoilAnalysis, labels map[string]string) template.HTML {
	if soil == nil {
		return ""
	}
	if soil.Note != "" {
		return template.HTML(`<p class="text-gray-500">` + template.HTMLEscapeString(soil.Note) + `</p>`)
	}
	return template.HTML(`<p><strong class="font-medium">` +
		template.HTMLEscapeString(labels["soil_type"]) + `:</strong> ` +
		template.HTMLEscapeString(soil.Prediction) +
		` (` + template.HTMLEscapeString(labels["confidence"]) + `: ` +
		FormatPercent(soil.Confidence) + `%)</p>`)
}

func renderFieldAdvice(advice models.AdviceList) template.HTML {
	if advice.Empty() || advice.Object {
		return `<p>No AI advice available.</p>`
	}
	var buf bytes.Buffer
	for _, item := range advice.Items {
		fieldAdviceTmpl.Execute(&buf, struct {
			Title       string
			Description string
		}{item.Title, item.Description})
	}
	return template.HTML(buf.String())
}
