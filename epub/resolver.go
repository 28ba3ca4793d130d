package epub

import "github.com/nwilmet-vivlio/swift-toolkit/settings"

// Settings is the fully resolved configuration a rendering layer applies.
// Inactive preferences (e.g. typography overrides while publisher styles
// are on) fall back to their defaults.
type Settings struct {
	PublisherStyles bool               `json:"publisherStyles"`
	Scroll          bool               `json:"scroll"`
	FontSize        float64            `json:"fontSize"`
	FontFamily      string             `json:"fontFamily,omitempty"`
	Theme           Theme              `json:"theme"`
	LineHeight      float64            `json:"lineHeight"`
	PageMargins     float64            `json:"pageMargins"`
	WordSpacing     float64            `json:"wordSpacing"`
	LetterSpacing   float64            `json:"letterSpacing"`
	TextAlign       TextAlign          `json:"textAlign"`
	Hyphens         bool               `json:"hyphens"`
	Columns         ColumnCount        `json:"columnCount"`
	Progression     ReadingProgression `json:"readingProgression"`
	Language        string             `json:"language,omitempty"`
}

// ResolveSettings computes the effective configuration for a preference
// set.
func ResolveSettings(p settings.Preferences) Settings {
	return Settings{
		PublisherStyles: PublisherStyles.Effective(p),
		Scroll:          Scroll.Effective(p),
		FontSize:        FontSize.Effective(p),
		FontFamily:      FontFamily.Effective(p),
		Theme:           Appearance.Effective(p),
		LineHeight:      LineHeight.Effective(p),
		PageMargins:     PageMargins.Effective(p),
		WordSpacing:     WordSpacing.Effective(p),
		LetterSpacing:   LetterSpacing.Effective(p),
		TextAlign:       TextAlignment.Effective(p),
		Hyphens:         Hyphens.Effective(p),
		Columns:         Columns.Effective(p),
		Progression:     Progression.Effective(p),
		Language:        Language.Effective(p),
	}
}

// Navigator holds the preference state of a reflowable EPUB view and
// recomputes its effective settings on submission. It implements
// settings.Configurable.
type Navigator struct {
	prefs    settings.Preferences
	resolved Settings
}

// NewNavigator returns a navigator with no overrides applied.
func NewNavigator() *Navigator {
	n := &Navigator{prefs: settings.NewPreferences()}
	n.resolved = ResolveSettings(n.prefs)
	return n
}

// Preferences returns a copy of the currently applied override set.
func (n *Navigator) Preferences() settings.Preferences {
	return n.prefs.Clone()
}

// Apply replaces the navigator's preferences, dropping keys it does not
// understand, and recomputes the effective settings.
func (n *Navigator) Apply(p settings.Preferences) {
	n.prefs = p.Filter(Keys()...)
	n.resolved = ResolveSettings(n.prefs)
}

// Settings returns the effective configuration after the last Apply.
func (n *Navigator) Settings() Settings {
	return n.resolved
}

var _ settings.Configurable = (*Navigator)(nil)
