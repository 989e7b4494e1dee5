package report

import (
	"bytes"
	"html/template"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// Advice section icons keyed by the four known titles; anything else gets
// the Description icon.
var adviceIcons = map[string]template.HTML{
	"Description": `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 16h-1v-4h-1m1-4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z"></path></svg>`,
	"Symptoms":    `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 12a3 3 0 11-6 0 3 3 0 016 0z"></path><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z"></path></svg>`,
	"Treatment":   `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M18.364 5.636l-3.536 3.536m0 5.656l3.536 3.536M9.172 9.172L5.636 5.636m3.536 9.192l-3.536 3.536M21 12a9 9 0 11-18 0 9 9 0 0118 0z"></path></svg>`,
	"Prevention":  `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"></path></svg>`,
}

var cropTmpl = template.Must(template.New("crop").Parse(`<div class="text-left p-2 md:p-4 w-full">
    <div class="text-center mb-6">
        {{if .IsHealthy}}<p class="text-2xl font-bold text-green-600 mb-2">Healthy</p>{{else}}<p class="text-2xl font-bold text-red-600 mb-2">Potential Issue Detected</p>{{end}}
        <p class="text-xl text-gray-800 font-semibold">{{.Prediction}}</p>
        <p class="text-md text-gray-500">Model Confidence: {{.ConfidencePercent}}%</p>
    </div>
    <hr class="my-6">
    <div>
        <h3 class="font-semibold text-2xl text-gray-800 mb-4">AI-Powered Detailed Analysis:</h3>
        <div class="space-y-4">{{.Advice}}</div>
    </div>
</div>`))

var adviceSectionTmpl = template.Must(template.New("adviceSection").Parse(`<div class="mb-6 bg-gray-50 p-4 rounded-lg border border-gray-200">
    <h4 class="font-bold text-lg text-gray-800 flex items-center gap-3 mb-3">
        <span class="text-emerald-600">{{.Icon}}</span>
        {{.Title}}
    </h4>
    <p class="text-gray-700 pl-9">{{.Description}}</p>
</div>`))

// RenderCropAnalysis formats the crop health result: status banner,
// prediction, confidence percentage, and the advice sections.
func RenderCropAnalysis(result *models.CropAnalysis) template.HTML {
	if result == nil {
		return ""
	}

	data := struct {
		IsHealthy         bool
		Prediction        string
		ConfidencePercent string
		Advice            template.HTML
	}{
		IsHealthy:         result.IsHealthy,
		Prediction:        result.Prediction,
		ConfidencePercent: FormatPercent(result.Confidence),
		Advice:            renderDetailedAdvice(result.DetailedAdvice),
	}

	var buf bytes.Buffer
	if err := cropTmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func renderDetailedAdvice(advice models.AdviceList) template.HTML {
	if advice.Empty() {
		return `<p>No detailed advice available.</p>`
	}
	if advice.Object {
		item := advice.Items[0]
		title := item.Title
		if title == "" {
			title = "Error"
		}
		description := item.Description
		if description == "" {
			description = "No detailed advice available."
		}
		return template.HTML(`<p>` +
			template.HTMLEscapeString(title) + `: ` +
			template.HTMLEscapeString(description) + `</p>`)
	}

	var buf bytes.Buffer
	for _, item := range advice.Items {
		title := item.Title
		if title == "" {
			title = "Advice"
		}
		description := item.Description
		if description == "" {
			description = "No details available."
		}
		icon, ok := adviceIcons[title]
		if !ok {
			icon = adviceIcons["Description"]
		}
		adviceSectionTmpl.Execute(&buf, struct {
			Icon        template.HTML
			Title       string
			Description template.HTML
		}{icon, title, breakLines(description)})
	}
	return template.HTML(buf.String())
}
