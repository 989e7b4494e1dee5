// Package services holds the application controller: per-feature services
// that drive the backend client and keep the session-scoped state that in
// the browser app lived as ambient module globals.
package services

import (
	"encoding/json"
	"sync"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// Session is the application-session context object. It scopes every piece
// of mutable state that crosses handler boundaries: the signed-in username,
// the single pending field report awaiting save, the cached location
// directory, and the chat history.
type Session struct {
	mu sync.Mutex

	username      string
	pendingReport *models.FieldReport
	locations     models.LocationDirectory
	chatHistory   json.RawMessage
	chatReady     bool
}

// NewSession builds an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetUsername records the authenticated user.
func (s *Session) SetUsername(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = name
}

// Username returns the authenticated user, or "" when signed out.
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// SetPendingReport arms the single save slot. A new analysis replaces any
// previous unsaved report.
func (s *Session) SetPendingReport(r *models.FieldReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingReport = r
}

// PendingReport returns the report awaiting save, or nil.
func (s *Session) PendingReport() *models.FieldReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingReport
}

// ClearPendingReport empties the save slot.
func (s *Session) ClearPendingReport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingReport = nil
}

// SetLocations caches the state-to-districts directory for the session.
func (s *Session) SetLocations(d models.LocationDirectory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = d
}

// Locations returns the cached directory, or nil before the first fetch.
func (s *Session) Locations() models.LocationDirectory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locations
}

// ChatHistory returns the current conversation history.
func (s *Session) ChatHistory() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatHistory
}

// ReplaceChatHistory swaps in the backend's returned history wholesale; the
// gateway never merges histories itself.
func (s *Session) ReplaceChatHistory(h json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = h
}

// ChatReady reports whether the chat widget was initialized.
func (s *Session) ChatReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatReady
}

// MarkChatReady records that init_chat was sent.
func (s *Session) MarkChatReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatReady = true
}

// Reset clears all session state after logout or account deletion.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.pendingReport = nil
	s.locations = nil
	s.chatHistory = nil
	s.chatReady = false
}
