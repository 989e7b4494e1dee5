package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIsTotal(t *testing.T) {
	assert.Equal(t, LangHindi, Normalize("hi"))
	assert.Equal(t, LangHindi, Normalize(" HI "))
	assert.Equal(t, LangEnglish, Normalize("en"))
	assert.Equal(t, LangEnglish, Normalize("fr"))
	assert.Equal(t, LangEnglish, Normalize(""))
	assert.Equal(t, LangEnglish, Normalize("es-MX"))
}

func TestTranslatorFallback(t *testing.T) {
	hi := NewTranslator(LangHindi)
	assert.NotEqual(t, "nav_dashboard", hi.T("nav_dashboard"))

	// A key absent from both tables resolves to itself.
	assert.Equal(t, "no_such_key", hi.T("no_such_key"))

	// Unknown languages degrade to English.
	fr := NewTranslator(Language("fr"))
	assert.Equal(t, LangEnglish, fr.Lang())
}

func TestLocalesCoverTheSameKeys(t *testing.T) {
	en := locales[LangEnglish]
	hi := locales[LangHindi]
	for key := range en {
		_, ok := hi[key]
		assert.True(t, ok, "hi.json missing %q", key)
	}
	for key := range hi {
		_, ok := en[key]
		assert.True(t, ok, "en.json missing %q", key)
	}
}

// memPrefs is an in-memory preference store for tests.
type memPrefs struct {
	values map[string]string
}

func (m *memPrefs) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memPrefs) Set(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *memPrefs) Close() error { return nil }

func TestStorePersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{}

	store := NewStore(prefs, "en")
	store.Init(ctx)
	assert.Equal(t, LangEnglish, store.Lang())

	store.SetLanguage(ctx, "hi")
	assert.Equal(t, LangHindi, store.Lang())
	assert.Equal(t, "hi", prefs.values[PrefKey])

	// A fresh store over the same backing restores Hindi.
	restored := NewStore(prefs, "en")
	restored.Init(ctx)
	assert.Equal(t, LangHindi, restored.Lang())
}

func TestStoreNormalizesPersistedValue(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{values: map[string]string{PrefKey: "klingon"}}

	store := NewStore(prefs, "hi")
	store.Init(ctx)
	assert.Equal(t, LangEnglish, store.Lang())
}

func TestListenersFireOncePerSwitchAfterSwap(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&memPrefs{}, "en")

	var calls int
	var seenTable string
	store.OnChange(func(lang Language) {
		calls++
		// The new table must already be active when the listener runs.
		seenTable = store.T("nav_dashboard")
		assert.Equal(t, lang, store.Lang())
	})

	store.SetLanguage(ctx, "hi")
	require.Equal(t, 1, calls)
	assert.Equal(t, NewTranslator(LangHindi).T("nav_dashboard"), seenTable)

	store.SetLanguage(ctx, "en")
	assert.Equal(t, 2, calls)
}

func TestTableIsACopy(t *testing.T) {
	tr := NewTranslator(LangEnglish)
	table := tr.Table()
	table["nav_dashboard"] = "mutated"
	assert.NotEqual(t, "mutated", tr.T("nav_dashboard"))
}
