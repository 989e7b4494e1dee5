package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

func TestRenderCropAnalysis(t *testing.T) {
	t.Run("nil result is empty", func(t *testing.T) {
		assert.Empty(t, RenderCropAnalysis(nil))
	})

	t.Run("healthy banner and confidence", func(t *testing.T) {
		html := string(RenderCropAnalysis(&models.CropAnalysis{
			Prediction: "Tomato - Healthy",
			Confidence: models.Num(0.98654),
			IsHealthy:  true,
		}))
		assert.Contains(t, html, "Healthy")
		assert.Contains(t, html, "Tomato - Healthy")
		assert.Contains(t, html, "Model Confidence: 98.7%")
		assert.Contains(t, html, "No detailed advice available.")
	})

	t.Run("issue banner", func(t *testing.T) {
		html := string(RenderCropAnalysis(&models.CropAnalysis{
			Prediction: "Tomato - Late Blight",
			Confidence: models.Num(0.91),
			IsHealthy:  false,
		}))
		assert.Contains(t, html, "Potential Issue Detected")
	})

	t.Run("missing confidence shows N/A", func(t *testing.T) {
		html := string(RenderCropAnalysis(&models.CropAnalysis{Prediction: "Wheat"}))
		assert.Contains(t, html, "Model Confidence: N/A%")
	})
}

func TestRenderDetailedAdviceShapes(t *testing.T) {
	t.Run("sections get their icons", func(t *testing.T) {
		var advice models.AdviceList
		require.NoError(t, json.Unmarshal([]byte(
			`[{"title": "Symptoms", "description": "Yellow spots."}, {"title": "Treatment", "description": "Neem oil."}]`), &advice))

		html := string(renderDetailedAdvice(advice))
		assert.Contains(t, html, "Symptoms")
		assert.Contains(t, html, "Yellow spots.")
		assert.Contains(t, html, "Treatment")
		assert.Equal(t, 2, strings.Count(html, "<svg"))
	})

	t.Run("unknown title falls back to the info icon", func(t *testing.T) {
		var advice models.AdviceList
		require.NoError(t, json.Unmarshal([]byte(
			`[{"title": "Extra Notes", "description": "Rotate crops."}]`), &advice))

		html := string(renderDetailedAdvice(advice))
		assert.Contains(t, html, "Extra Notes")
		assert.Contains(t, html, "<svg")
	})

	t.Run("lone object renders as one line", func(t *testing.T) {
		var advice models.AdviceList
		require.NoError(t, json.Unmarshal([]byte(
			`{"title": "Error", "description": "AI advice unavailable."}`), &advice))

		html := string(renderDetailedAdvice(advice))
		assert.Equal(t, "<p>Error: AI advice unavailable.</p>", html)
	})

	t.Run("empty advice", func(t *testing.T) {
		assert.Equal(t, "<p>No detailed advice available.</p>", string(renderDetailedAdvice(models.AdviceList{})))
	})
}

func TestRenderFieldReport(t *testing.T) {
	payload := `{
        "location": {"state": "Rajasthan", "district": "Jaipur"},
        "weather": {"temperature": "31.5", "description": "clear sky"},
        "historical_weather": {"kharif_avg_temp": 29.1, "kharif_total_rainfall": "540", "rabi_avg_temp": "oops", "note": ""},
        "soil_analysis": {"prediction": "Alluvial", "confidence": 0.92},
        "recommendations": {"recommended_crops": ["Wheat", "Mustard"], "considerations": "Ensure irrigation."},
        "ai_advice": [{"title": "Irrigation", "description": "Water weekly."}],
        "generated_at": "2025-06-14T09:30:00"
    }`
	var report models.FieldReport
	require.NoError(t, json.Unmarshal([]byte(payload), &report))

	t.Run("english labels", func(t *testing.T) {
		html := string(RenderFieldReport(&report, "en"))
		// Only the state names the location row; temperature is rounded to whole degrees.
		assert.Contains(t, html, "Rajasthan")
		assert.Contains(t, html, "32°C, clear sky")
		assert.Contains(t, html, "Alluvial")
		assert.Contains(t, html, "92.0")
		assert.Contains(t, html, "Wheat")
		assert.Contains(t, html, "14-06-2025")
		// The invalid rabi temperature row is omitted rather than shown as N/A.
		assert.NotContains(t, html, "oops")
	})

	t.Run("hindi labels", func(t *testing.T) {
		html := string(RenderFieldReport(&report, "hi"))
		assert.Contains(t, html, "Rajasthan")
		assert.Contains(t, html, "मिट्टी")
	})

	t.Run("unknown language renders nothing", func(t *testing.T) {
		assert.Empty(t, RenderFieldReport(&report, "fr"))
	})

	t.Run("empty language defaults to english", func(t *testing.T) {
		assert.Equal(t, RenderFieldReport(&report, "en"), RenderFieldReport(&report, ""))
	})

	t.Run("nil report is empty", func(t *testing.T) {
		assert.Empty(t, RenderFieldReport(nil, "en"))
	})
}

func TestRenderPriceEstimate(t *testing.T) {
	estimate := &models.PriceEstimate{
		Crop:                  "Wheat",
		Location:              "Jaipur, Rajasthan",
		AverageMandiPrice:     json.Number("2600"),
		EstimatedYieldQPA:     json.Number("18.5"),
		TotalEstimatedRevenue: models.Num(123456.4),
		AreaAcres:             json.Number("2.5"),
	}

	t.Run("fresh price", func(t *testing.T) {
		html := string(RenderPriceEstimate(estimate))
		assert.Contains(t, html, "Wheat")
		assert.Contains(t, html, "₹ 2600 / Quintal")
		assert.Contains(t, html, "~18.5 Quintals / Acre")
		assert.Contains(t, html, "2.5 acres")
		assert.Contains(t, html, "₹1,23,456")
		assert.NotContains(t, html, "Live market data is currently unavailable")
	})

	t.Run("quantities keep the backend form", func(t *testing.T) {
		verbatim := *estimate
		verbatim.AreaAcres = json.Number("2")
		verbatim.AverageMandiPrice = json.Number("2600.50")
		html := string(RenderPriceEstimate(&verbatim))
		assert.Contains(t, html, "2 acres")
		assert.NotContains(t, html, "2.0 acres")
		assert.Contains(t, html, "₹ 2600.50 / Quintal")
	})

	t.Run("stale price carries the dated note", func(t *testing.T) {
		stale := *estimate
		stale.IsStale = true
		stale.StaleDate = "2025-05-02"
		html := string(RenderPriceEstimate(&stale))
		assert.Contains(t, html, "2025-05-02")
	})

	t.Run("nil estimate is empty", func(t *testing.T) {
		assert.Empty(t, RenderPriceEstimate(nil))
	})
}

func TestRenderSavedReports(t *testing.T) {
	actions := ListActions{
		ViewURL:   func(id int64) string { return "/view/7" },
		DeleteURL: func(id int64) string { return "/delete/7" },
	}

	t.Run("empty list", func(t *testing.T) {
		html := string(RenderSavedReports(nil, actions, "View", "Delete"))
		assert.Contains(t, html, "You haven't saved any field reports yet.")
	})

	t.Run("items carry coordinates and actions", func(t *testing.T) {
		payload := `{"id": 7, "latitude": "26.9124", "longitude": 75.7873,
            "report_data": "{\"generated_at\": \"2025-06-14T09:30:00\"}"}`
		var saved models.SavedReport
		require.NoError(t, json.Unmarshal([]byte(payload), &saved))

		html := string(RenderSavedReports([]models.SavedReport{saved}, actions, "View", "Delete"))
		assert.Contains(t, html, "26.91")
		assert.Contains(t, html, "75.79")
		assert.Contains(t, html, "14-06-2025")
		assert.Contains(t, html, "/view/7")
		assert.Contains(t, html, "/delete/7")
	})
}

func TestRenderFertilizerPlan(t *testing.T) {
	t.Run("nil plan", func(t *testing.T) {
		assert.Contains(t, string(RenderFertilizerPlan(nil)), "Could not generate a plan.")
	})

	t.Run("quantities render verbatim", func(t *testing.T) {
		var plan models.FertilizerPlan
		require.NoError(t, json.Unmarshal([]byte(
			`{"crop": "Wheat", "n_needed": 120.50, "p_needed": 60, "k_needed": 40,
              "ai_application_advice": [{"title": "Basal Dose", "description": "* Apply half the urea at sowing. * Mix DAP into the top soil."}]}`), &plan))

		html := string(RenderFertilizerPlan(&plan))
		assert.Contains(t, html, "120.50 kg")
		assert.Contains(t, html, "60 kg")
		assert.Contains(t, html, "Basal Dose")
		assert.Equal(t, 2, strings.Count(html, "<li"))
		assert.Contains(t, html, "Apply half the urea at sowing.")
	})

	t.Run("flat text advice", func(t *testing.T) {
		var plan models.FertilizerPlan
		require.NoError(t, json.Unmarshal([]byte(
			`{"crop": "Rice", "n_needed": 80, "p_needed": 40, "k_needed": 40,
              "ai_application_advice": "Apply in three splits."}`), &plan))

		html := string(RenderFertilizerPlan(&plan))
		assert.Contains(t, html, "Apply in three splits.")
	})
}
