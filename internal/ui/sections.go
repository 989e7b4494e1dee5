package ui

import "sync"

// The navigable content sections of the main app.
const (
	SectionDashboard    = "dashboardSection"
	SectionAnalyzeCrop  = "analyzeCropSection"
	SectionAnalyzeField = "analyzeFieldSection"
	SectionPrices       = "priceInfoSection"
	SectionMyReports    = "myReportsSection"
	SectionFertilizer   = "fertilizerInfoSection"
	SectionSettings     = "settingsSection"
)

// Sections tracks which content section is visible. Exactly one section (and
// its matching navigation link) is active at a time.
type Sections struct {
	mu     sync.Mutex
	active string
}

// NewSections starts on the dashboard.
func NewSections() *Sections {
	return &Sections{active: SectionDashboard}
}

// Show makes the named section the single active one.
func (s *Sections) Show(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = id
}

// Active returns the visible section id.
func (s *Sections) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
