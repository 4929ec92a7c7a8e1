// Package prefs is the persistent session store: typed access to the five
// pieces of user state that survive restarts. Every setter writes through to
// the backing key-value store before returning.
package prefs

import (
	"fmt"

	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/logging"
	"github.com/goccy/go-json"
)

// Storage keys. Names match the web client's localStorage keys so exported
// state stays recognizable.
const (
	KeyLanguage      = "preferredLanguage"
	KeyTheme         = "preferredTheme"
	KeyInfoDismissed = "infoCardHidden"
	KeyHistory       = "gameSearchHistory"
	KeyFavorites     = "gameFavorites"
)

// Theme is the color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// KV is the durable string store underneath.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Prefs reads and writes user state.
type Prefs struct {
	kv KV
}

// New wraps kv.
func New(kv KV) *Prefs {
	return &Prefs{kv: kv}
}

// Language returns the saved language, if any.
func (p *Prefs) Language() (locale.Lang, bool) {
	v, ok := p.get(KeyLanguage)
	if !ok || !locale.Valid(locale.Lang(v)) {
		return "", false
	}
	return locale.Lang(v), true
}

// SetLanguage saves the language.
func (p *Prefs) SetLanguage(l locale.Lang) error {
	return p.set(KeyLanguage, string(l))
}

// Theme returns the saved theme, if any.
func (p *Prefs) Theme() (Theme, bool) {
	v, ok := p.get(KeyTheme)
	switch Theme(v) {
	case Dark, Light:
		return Theme(v), ok
	}
	return "", false
}

// SetTheme saves the theme.
func (p *Prefs) SetTheme(t Theme) error {
	return p.set(KeyTheme, string(t))
}

// InfoDismissed reports whether the how-to card was dismissed.
func (p *Prefs) InfoDismissed() bool {
	v, ok := p.get(KeyInfoDismissed)
	return ok && v == "true"
}

// DismissInfo records that the how-to card was dismissed.
func (p *Prefs) DismissInfo() error {
	return p.set(KeyInfoDismissed, "true")
}

// History returns the saved search history, most recent first.
// Unreadable data is treated as empty.
func (p *Prefs) History() []string {
	var h []string
	if !p.decode(KeyHistory, &h) {
		return nil
	}
	return h
}

// SaveHistory writes the full history list.
func (p *Prefs) SaveHistory(h []string) error {
	if h == nil {
		h = []string{}
	}
	return p.encode(KeyHistory, h)
}

// ClearHistory removes the history key entirely.
func (p *Prefs) ClearHistory() error {
	if err := p.kv.Remove(KeyHistory); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Favorites returns the saved id→snapshot map, never nil.
func (p *Prefs) Favorites() map[string]game.Snapshot {
	favs := map[string]game.Snapshot{}
	if !p.decode(KeyFavorites, &favs) || favs == nil {
		favs = map[string]game.Snapshot{}
	}
	return favs
}

// SaveFavorites writes the full favorites map.
func (p *Prefs) SaveFavorites(f map[string]game.Snapshot) error {
	if f == nil {
		f = map[string]game.Snapshot{}
	}
	return p.encode(KeyFavorites, f)
}

func (p *Prefs) get(key string) (string, bool) {
	v, ok, err := p.kv.Get(key)
	if err != nil {
		logging.Warn("prefs read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (p *Prefs) set(key, value string) error {
	if err := p.kv.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *Prefs) decode(key string, dst any) bool {
	v, ok := p.get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		logging.Warn("prefs value unreadable, ignoring", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Prefs) encode(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return p.set(key, string(data))
}
