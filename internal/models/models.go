package models

import (
	"encoding/json"
)

// AuthStatus reports whether the backend holds an authenticated session.
type AuthStatus struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username"`
}

// Ack is the generic {message} acknowledgement the backend returns for
// mutations (save, delete, password change, account deletion).
type Ack struct {
	Message string `json:"message"`
}

// AdviceItem is one titled advice section produced by the backend's AI layer.
type AdviceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CropAnalysis is the backend's inference over an uploaded crop image.
type CropAnalysis struct {
	Prediction     string     `json:"prediction"`
	Confidence     Number     `json:"confidence"`
	IsHealthy      bool       `json:"is_healthy"`
	DetailedAdvice AdviceList `json:"detailed_advice"`
}

// CropAnalysisResponse wraps the analyze-crop payload.
type CropAnalysisResponse struct {
	Success bool          `json:"success"`
	Result  *CropAnalysis `json:"result"`
}

// Location identifies where a field report was generated.
type Location struct {
	State     string `json:"state"`
	District  string `json:"district"`
	Latitude  Number `json:"latitude"`
	Longitude Number `json:"longitude"`
}

// Weather is a current-conditions snapshot.
type Weather struct {
	Temperature Number `json:"temperature"`
	Description string `json:"description"`
}

// HistoricalWeather summarizes the two Indian cropping seasons. Fields that
// the backend could not compute arrive absent or non-numeric; renderers omit
// those rows.
type HistoricalWeather struct {
	KharifAvgTemp       Number `json:"kharif_avg_temp"`
	KharifTotalRainfall Number `json:"kharif_total_rainfall"`
	RabiAvgTemp         Number `json:"rabi_avg_temp"`
	RabiTotalRainfall   Number `json:"rabi_total_rainfall"`
	Note                string `json:"note"`
}

// SoilAnalysis is the soil-type classification for a field. When the backend
// could not classify, Note carries the explanation and Prediction is empty.
type SoilAnalysis struct {
	Prediction string `json:"prediction"`
	Confidence Number `json:"confidence"`
	Note       string `json:"note"`
}

// Recommendations lists crops suggested for the analyzed field.
type Recommendations struct {
	RecommendedCrops []string `json:"recommended_crops"`
	Considerations   string   `json:"considerations"`
}

// FieldReport is the combined soil/weather/crop bundle from analyze-field.
// Raw holds the undecoded body so a later save round-trips the backend's
// payload byte-for-byte instead of re-encoding our view of it.
type FieldReport struct {
	Location          Location           `json:"location"`
	Weather           *Weather           `json:"weather"`
	HistoricalWeather *HistoricalWeather `json:"historical_weather"`
	SoilAnalysis      *SoilAnalysis      `json:"soil_analysis"`
	Recommendations   *Recommendations   `json:"recommendations"`
	AIAdvice          AdviceList         `json:"ai_advice"`
	GeneratedAt       string             `json:"generated_at"`
	Lang              string             `json:"lang"`

	Raw json.RawMessage `json:"-"`
}

func (r *FieldReport) UnmarshalJSON(b []byte) error {
	type alias FieldReport
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*r = FieldReport(a)
	r.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// PriceEstimate is a revenue projection for a crop/location/area. The price,
// yield and area quantities keep the backend's own textual form; only the
// revenue total is reformatted for display.
type PriceEstimate struct {
	Crop                  string      `json:"crop"`
	Location              string      `json:"location"`
	AverageMandiPrice     json.Number `json:"average_mandi_price"`
	EstimatedYieldQPA     json.Number `json:"estimated_yield_qpa"`
	TotalEstimatedRevenue Number      `json:"total_estimated_revenue"`
	AreaAcres             json.Number `json:"area_acres"`
	Note                  string      `json:"note"`
	IsStale               bool        `json:"is_stale"`
	StaleDate             string      `json:"stale_date"`
}

// PriceResponse wraps the mandi-price payload.
type PriceResponse struct {
	Success bool           `json:"success"`
	Result  *PriceEstimate `json:"result"`
}

// SavedReport is one previously saved field report as listed by the backend.
type SavedReport struct {
	ID        int64         `json:"id"`
	Latitude  Number        `json:"latitude"`
	Longitude Number        `json:"longitude"`
	Report    ReportPayload `json:"report_data"`
}

// ReportsResponse is the saved-report collection.
type ReportsResponse struct {
	Reports []SavedReport `json:"reports"`
}

// FertilizerPlan is the nutrient recommendation derived from a saved report.
// Nutrient quantities are kept as json.Number so they render verbatim.
type FertilizerPlan struct {
	Crop    string      `json:"crop"`
	NNeeded json.Number `json:"n_needed"`
	PNeeded json.Number `json:"p_needed"`
	KNeeded json.Number `json:"k_needed"`
	Advice  AdviceText  `json:"ai_application_advice"`
}

// FertilizerPlanResponse wraps the plan payload; the backend signals
// plan-level failure in-band via Success/Error.
type FertilizerPlanResponse struct {
	Success bool            `json:"success"`
	Plan    *FertilizerPlan `json:"plan"`
	Error   string          `json:"error"`
}

// ChatRequest is one turn sent to the advisory chatbot. Either Event or
// Message is set. History is opaque to the gateway and round-tripped
// wholesale; the backend owns its shape.
type ChatRequest struct {
	Event   string          `json:"event,omitempty"`
	Message string          `json:"message,omitempty"`
	History json.RawMessage `json:"history,omitempty"`
}

// ChatOption is a quick-reply button offered by the bot.
type ChatOption struct {
	Label   string `json:"label"`
	Payload struct {
		Message string `json:"message"`
	} `json:"payload"`
}

// ChatReply is the bot's half of a turn. Content is a string or a list of
// titled sections depending on what the model produced.
type ChatReply struct {
	Type    string       `json:"type"`
	Content AdviceText   `json:"content"`
	Options []ChatOption `json:"options"`
}

// ChatResponse carries the reply and the replacement history.
type ChatResponse struct {
	Success bool            `json:"success"`
	Reply   ChatReply       `json:"reply"`
	History json.RawMessage `json:"history"`
}

// LocationDirectory maps state names to their district names.
type LocationDirectory map[string][]string

// DashboardSummary is the main-app landing payload.
type DashboardSummary struct {
	Success        bool     `json:"success"`
	HasData        bool     `json:"has_data"`
	Username       string   `json:"username"`
	Location       string   `json:"location"`
	CurrentWeather *Weather `json:"current_weather"`
	SoilType       string   `json:"soil_type"`
	LastReport     struct {
		Date               string `json:"date"`
		TopCropRecommended string `json:"top_crop_recommended"`
	} `json:"last_report"`
	MandiPrice struct {
		Crop  string `json:"crop"`
		Price Number `json:"price"`
	} `json:"mandi_price"`
	PriceChart *PriceChart `json:"price_chart"`
}

// PriceChart is the dashboard bar-chart series.
type PriceChart struct {
	Labels []string  `json:"labels"`
	Prices []float64 `json:"prices"`
}
