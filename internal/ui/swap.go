package ui

import (
	"encoding/base64"
	"html/template"
	"net/http"
)

// FadeMillis is the content-swap transition duration. The surface's visual
// transition must use the same value or content changes while still visible.
const FadeMillis = 300

// Swap is the content-transition payload handed to the surface: fade the
// container out, replace its content, fade back in.
type Swap struct {
	Content    template.HTML `json:"content"`
	FadeMillis int           `json:"fade_millis"`
}

// NewSwap wraps rendered content in a transition with the fixed duration.
func NewSwap(content template.HTML) Swap {
	return Swap{Content: content, FadeMillis: FadeMillis}
}

// PreviewImage renders an uploaded file as an inline preview fragment. The
// content type is sniffed from the bytes, matching what a browser-side file
// reader would have produced.
func PreviewImage(data []byte) template.HTML {
	if len(data) == 0 {
		return ""
	}
	contentType := http.DetectContentType(data)
	src := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return template.HTML(`<img src="` + src +
		`" alt="Image Preview" class="max-w-xs mx-auto h-auto rounded-lg shadow-md max-h-48">`)
}

// SkeletonGeneric is the placeholder shown while a feature region loads.
const SkeletonGeneric = template.HTML(`<div class="w-full text-left">
    <div class="skeleton skeleton-title w-1/3 mb-4"></div>
    <div class="skeleton skeleton-text w-full"></div>
    <div class="skeleton skeleton-text w-full"></div>
    <div class="skeleton skeleton-text w-3/4"></div>
    <div class="skeleton h-24 mt-6"></div>
</div>`)

// SkeletonDashboard is the larger placeholder used by the dashboard region.
const SkeletonDashboard = template.HTML(`<div class="text-left py-4 w-full">
    <div class="skeleton skeleton-title w-1/3 mb-4"></div>
    <div class="skeleton h-48 mb-6 rounded-xl"></div>
    <div class="skeleton skeleton-title w-1/4 mb-4"></div>
    <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6">
        <div class="skeleton h-32 rounded-xl"></div>
        <div class="skeleton h-32 rounded-xl"></div>
        <div class="skeleton h-32 rounded-xl"></div>
        <div class="skeleton h-32 rounded-xl"></div>
    </div>
</div>`)
