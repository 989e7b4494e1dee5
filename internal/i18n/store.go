package i18n

import (
	"context"
	"sync"

	"github.com/apex/log"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/prefs"
)

// PrefKey is the single persisted client-state key, carried over from the
// original client's localStorage slot.
const PrefKey = "kisan-drishti-lang"

// Listener is notified after a language switch has fully taken effect.
type Listener func(Language)

// Store tracks the current UI language and the active string table. A switch
// is atomic from the listeners' point of view: they fire exactly once per
// switch, strictly after the new table is active.
type Store struct {
	prefs       prefs.Store
	defaultLang Language

	mu         sync.RWMutex
	translator Translator
	listeners  []Listener
}

// NewStore builds a language store backed by the preference store.
func NewStore(p prefs.Store, defaultLang string) *Store {
	def := Normalize(defaultLang)
	return &Store{
		prefs:       p,
		defaultLang: def,
		translator:  NewTranslator(def),
	}
}

// Init restores the previously persisted language, applying the default when
// none was saved.
func (s *Store) Init(ctx context.Context) {
	tag := ""
	if s.prefs != nil {
		saved, err := s.prefs.Get(ctx, PrefKey)
		if err != nil {
			log.Errorf("restore language preference: %v", err)
		} else {
			tag = saved
		}
	}
	if tag == "" {
		tag = string(s.defaultLang)
	}
	s.SetLanguage(ctx, tag)
}

// SetLanguage normalizes the tag, makes the matching string table active,
// persists the choice, and then announces the change.
func (s *Store) SetLanguage(ctx context.Context, tag string) Language {
	lang := Normalize(tag)

	s.mu.Lock()
	s.translator = NewTranslator(lang)
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(ctx, PrefKey, string(lang)); err != nil {
			log.Errorf("persist language preference: %v", err)
		}
	}

	// Listeners observe the new table: the swap above happens before any
	// notification goes out.
	for _, fn := range listeners {
		fn(lang)
	}
	return lang
}

// OnChange registers a listener for future language switches.
func (s *Store) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Lang returns the current language tag.
func (s *Store) Lang() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translator.Lang()
}

// Translator returns the active translator.
func (s *Store) Translator() Translator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translator
}

// T resolves one key against the active table.
func (s *Store) T(key string) string {
	return s.Translator().T(key)
}
