package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// dashboardLabels carries the dashboard's dynamic phrasings per language.
var dashboardLabels = map[string]struct {
	welcome    string
	overview   string
	onDate     string
	forCrop    string
	inLocation string
}{
	"en": {
		welcome:    "Welcome Back, %s!",
		overview:   "Your Personalized Farm Overview for %s",
		onDate:     "On %s",
		forCrop:    "(for %s)",
		inLocation: "in %s",
	},
	"hi": {
		welcome:    "%s, आपका स्वागत है!",
		overview:   "%s के लिए आपका व्यक्तिगत फार्म अवलोकन",
		onDate:     "दिनांक %s को",
		forCrop:    "(%s के लिए)",
		inLocation: "%s में",
	},
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<div class="text-left py-4 w-full">
    <div class="hero-text mb-6">
        <h3 class="text-2xl font-bold text-emerald-800">{{.Welcome}}</h3>
        <p class="text-gray-600">{{.Overview}}</p>
    </div>
    <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6">
        <div class="bg-white p-4 rounded-xl shadow-sm">
            <p class="text-sm text-gray-500">{{.ReportDate}}</p>
            <p class="text-lg font-semibold text-gray-800">{{.ReportCrop}}</p>
        </div>
        <div class="bg-white p-4 rounded-xl shadow-sm">
            <p class="text-sm text-gray-500">{{.PriceCrop}}</p>
            <p class="text-lg font-semibold text-gray-800">{{.PriceValue}}</p>
        </div>
        <div class="bg-white p-4 rounded-xl shadow-sm">
            <p class="text-sm text-gray-500">Soil</p>
            <p class="text-lg font-semibold text-gray-800">{{.SoilType}}</p>
        </div>
        <div class="bg-white p-4 rounded-xl shadow-sm">
            <p class="text-sm text-gray-500">{{.WeatherLocation}}</p>
            <p class="text-lg font-semibold text-gray-800">{{.CurrentTemp}}</p>
            <p class="text-sm text-gray-600">{{.CurrentDesc}}</p>
        </div>
    </div>
    <canvas id="mandiPriceChart" class="mt-6" data-chart="{{.ChartJSON}}"></canvas>
</div>`))

var dashboardWelcomeTmpl = template.Must(template.New("dashboardWelcome").Parse(`<div class="text-center py-10">
    <h3 class="text-2xl font-bold text-emerald-800 mb-2">{{.Title}}</h3>
    <p class="text-gray-600 mb-6">{{.Body}}</p>
    <button id="dashboard-cta-btn" class="bg-emerald-600 text-white px-6 py-3 rounded-lg font-semibold">{{.CTA}}</button>
</div>`))

// RenderDashboard formats the populated dashboard. The chart series travels
// as a data attribute for the surface's chart library.
func RenderDashboard(data *models.DashboardSummary, lang string) template.HTML {
	if data == nil {
		return ""
	}
	labels, ok := dashboardLabels[lang]
	if !ok {
		labels = dashboardLabels["en"]
	}

	priceCrop := data.MandiPrice.Crop
	if priceCrop == "" {
		priceCrop = NotAvailable
	}
	priceValue := NotAvailable
	if data.MandiPrice.Price.Valid {
		priceValue = "₹" + FormatNumber(data.MandiPrice.Price, 0)
	}
	soilType := data.SoilType
	if soilType == "" {
		soilType = NotAvailable
	}

	currentTemp := NotAvailable
	currentDesc := NotAvailable
	if w := data.CurrentWeather; w != nil {
		if w.Temperature.Valid {
			currentTemp = fmt.Sprintf("%.0f°C", math.Round(w.Temperature.Value))
		}
		if w.Description != "" {
			currentDesc = w.Description
		}
	}

	chartJSON := ""
	if data.PriceChart != nil {
		if b, err := json.Marshal(data.PriceChart); err == nil {
			chartJSON = string(b)
		}
	}

	view := struct {
		Welcome         string
		Overview        string
		ReportDate      string
		ReportCrop      string
		PriceCrop       string
		PriceValue      string
		SoilType        string
		WeatherLocation string
		CurrentTemp     string
		CurrentDesc     string
		ChartJSON       string
	}{
		Welcome:         fmt.Sprintf(labels.welcome, data.Username),
		Overview:        fmt.Sprintf(labels.overview, data.Location),
		ReportDate:      fmt.Sprintf(labels.onDate, data.LastReport.Date),
		ReportCrop:      data.LastReport.TopCropRecommended,
		PriceCrop:       fmt.Sprintf(labels.forCrop, priceCrop),
		PriceValue:      priceValue,
		SoilType:        soilType,
		WeatherLocation: fmt.Sprintf(labels.inLocation, data.Location),
		CurrentTemp:     currentTemp,
		CurrentDesc:     currentDesc,
		ChartJSON:       chartJSON,
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// RenderDashboardWelcome formats the "no data yet" state shown before the
// first field analysis.
func RenderDashboardWelcome(title, body, cta string) template.HTML {
	var buf bytes.Buffer
	if err := dashboardWelcomeTmpl.Execute(&buf, struct {
		Title, Body, CTA string
	}{title, body, cta}); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
