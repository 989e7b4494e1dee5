package report

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

var fertilizerTmpl = template.Must(template.New("fertilizer").Parse(`<div class="text-left w-full">
    <h3 class="text-2xl font-bold text-emerald-800 mb-4">Fertilizer Plan for {{.Crop}}</h3>
    <div class="p-4 bg-teal-50 rounded-lg border border-teal-200">
        <p class="text-sm text-gray-600 mb-2">Approximate nutrients to add per acre:</p>
        <div class="grid grid-cols-3 gap-2 text-center mb-4">
            <div class="bg-white p-3 rounded-lg shadow-sm">
                <strong class="block text-gray-800">Nitrogen (N)</strong>
                <span class="text-xl font-bold">{{.N}} kg</span>
            </div>
            <div class="bg-white p-3 rounded-lg shadow-sm">
                <strong class="block text-gray-800">Phosphorus (P)</strong>
                <span class="text-xl font-bold">{{.P}} kg</span>
            </div>
            <div class="bg-white p-3 rounded-lg shadow-sm">
                <strong class="block text-gray-800">Potassium (K)</strong>
                <span class="text-xl font-bold">{{.K}} kg</span>
            </div>
        </div>
        <h4 class="font-semibold text-md text-gray-800 mt-4">AI Application Advice:</h4>
        {{.Advice}}
    </div>
    <p class="text-xs text-gray-500 mt-3">*This is a general recommendation based on average soil data for your state. For best results, conduct a detailed soil test.</p>
</div>`))

var fertilizerAdviceTmpl = template.Must(template.New("fertilizerAdvice").Parse(`<div class="mt-4">
    <h5 class="font-semibold text-teal-800 text-md flex items-center">
         <span class="mr-2">🌱</span> {{.Title}}
    </h5>
    <ul class="text-sm text-teal-900 mt-1 pl-6 space-y-1">{{.Bullets}}</ul>
</div>`))

// RenderFertilizerPlan formats the nutrient plan. Quantities render
// verbatim; structured advice becomes bullet lists parsed out of the flat
// description, anything else renders as pre-formatted text.
func RenderFertilizerPlan(plan *models.FertilizerPlan) template.HTML {
	if plan == nil {
		return `<p class="text-center text-gray-500">Could not generate a plan.</p>`
	}

	var advice template.HTML
	if plan.Advice.List {
		advice = renderStructuredAdvice(plan.Advice.Items)
	} else {
		advice = template.HTML(`<div class="text-sm text-teal-900 whitespace-pre-wrap mt-2">` +
			template.HTMLEscapeString(plan.Advice.Text) + `</div>`)
	}

	data := struct {
		Crop    string
		N, P, K string
		Advice  template.HTML
	}{
		Crop:   plan.Crop,
		N:      plan.NNeeded.String(),
		P:      plan.PNeeded.String(),
		K:      plan.KNeeded.String(),
		Advice: advice,
	}

	var buf bytes.Buffer
	if err := fertilizerTmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func renderStructuredAdvice(items []models.AdviceItem) template.HTML {
	if len(items) == 0 {
		return `<p>No detailed advice available.</p>`
	}
	var buf bytes.Buffer
	for _, item := range items {
		fertilizerAdviceTmpl.Execute(&buf, struct {
			Title   string
			Bullets template.HTML
		}{item.Title, adviceBullets(item.Description)})
	}
	return template.HTML(buf.String())
}

// adviceBullets splits a flat description on the literal "*" delimiter into
// list items, stripping embedded line breaks.
func adviceBullets(description string) template.HTML {
	var buf bytes.Buffer
	for _, part := range strings.Split(description, "*") {
		part = strings.ReplaceAll(part, "\r", "")
		part = strings.ReplaceAll(part, "\n", "")
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		buf.WriteString(`<li class="flex items-start"><span class="mr-2 mt-1 text-teal-600">▪</span><span>`)
		buf.WriteString(template.HTMLEscapeString(part))
		buf.WriteString(`</span></li>`)
	}
	return template.HTML(buf.String())
}
