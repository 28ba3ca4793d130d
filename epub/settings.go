// Package epub declares the display settings of a reflowable EPUB
// navigator and resolves Preferences into an effective configuration.
package epub

import "github.com/nwilmet-vivlio/swift-toolkit/settings"

// Theme is the color scheme applied to the publication.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// TextAlign is the paragraph alignment of reflowed text.
type TextAlign string

const (
	TextAlignStart   TextAlign = "start"
	TextAlignLeft    TextAlign = "left"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
)

// ColumnCount is the number of text columns in paginated mode.
type ColumnCount string

const (
	ColumnCountAuto ColumnCount = "auto"
	ColumnCountOne  ColumnCount = "1"
	ColumnCountTwo  ColumnCount = "2"
)

// ReadingProgression is the direction pages flow in.
type ReadingProgression string

const (
	ProgressionLTR ReadingProgression = "ltr"
	ProgressionRTL ReadingProgression = "rtl"
)

// The navigator's settings. Typography settings (line height, spacing,
// alignment, hyphenation) only take effect while the publisher's own
// styles are disabled; writing a preference for one of them force-
// disables PublisherStyles unless activation is suppressed. Column count
// is meaningless while scrolling, so it requires Scroll to be off.
var (
	// PublisherStyles keeps the publication's own CSS when enabled.
	PublisherStyles = settings.NewToggleSetting("publisherStyles", true)

	// Scroll switches from paginated to continuous scrolling layout.
	Scroll = settings.NewToggleSetting("scroll", false)

	// FontSize scales the base font, as a percentage of the publisher size.
	FontSize = settings.NewRangeSetting[float64]("fontSize", 1.0, 0.4, 5.0,
		settings.WithSuggestedSteps(0.5, 0.8, 1.0, 2.0, 3.0, 5.0))

	// FontFamily overrides the publisher typeface. Empty keeps the
	// publisher font; the list of faces is unrestricted.
	FontFamily = settings.NewEnumSetting[string]("fontFamily", "", settings.StringCodec[string](), nil)

	// Appearance selects the color theme.
	Appearance = settings.NewEnumSetting("theme", ThemeLight, settings.StringCodec[Theme](),
		[]Theme{ThemeLight, ThemeDark, ThemeSepia})

	// LineHeight is the text leading, as a multiple of the font size.
	LineHeight = settings.NewRangeSetting[float64]("lineHeight", 1.2, 1.0, 2.0,
		settings.WithSuggestedIncrement(0.1)).
		WithActivation(settings.RequireDisabled(PublisherStyles))

	// PageMargins scales the horizontal page margins.
	PageMargins = settings.NewRangeSetting[float64]("pageMargins", 1.0, 0.5, 4.0,
		settings.WithSuggestedIncrement(0.25))

	// WordSpacing adds space between words, as a fraction of the font size.
	WordSpacing = settings.NewRangeSetting[float64]("wordSpacing", 0.0, 0.0, 1.0,
		settings.WithSuggestedIncrement(0.05)).
		WithActivation(settings.RequireDisabled(PublisherStyles))

	// LetterSpacing adds space between letters, as a fraction of the font
	// size.
	LetterSpacing = settings.NewRangeSetting[float64]("letterSpacing", 0.0, 0.0, 1.0,
		settings.WithSuggestedIncrement(0.05)).
		WithActivation(settings.RequireDisabled(PublisherStyles))

	// TextAlignment overrides the publisher paragraph alignment.
	TextAlignment = settings.NewEnumSetting("textAlign", TextAlignStart, settings.StringCodec[TextAlign](),
		[]TextAlign{TextAlignStart, TextAlignLeft, TextAlignRight, TextAlignJustify}).
		WithActivation(settings.RequireDisabled(PublisherStyles))

	// Hyphens enables automatic hyphenation.
	Hyphens = settings.NewToggleSetting("hyphens", false).
		WithActivation(settings.RequireDisabled(PublisherStyles))

	// Columns sets the column count in paginated mode.
	Columns = settings.NewEnumSetting("columnCount", ColumnCountAuto, settings.StringCodec[ColumnCount](),
		[]ColumnCount{ColumnCountAuto, ColumnCountOne, ColumnCountTwo}).
		WithActivation(settings.RequireDisabled(Scroll))

	// Progression sets the reading direction.
	Progression = settings.NewEnumSetting("readingProgression", ProgressionLTR,
		settings.StringCodec[ReadingProgression](),
		[]ReadingProgression{ProgressionLTR, ProgressionRTL})

	// Language overrides the publication language, as a BCP 47 tag.
	Language = settings.NewSetting[string]("language", "", settings.StringCodec[string]())
)

// Keys lists every setting key the navigator understands, useful for
// filtering a preference set down to what this package consumes.
func Keys() []settings.Key {
	return []settings.Key{
		PublisherStyles.Key(),
		Scroll.Key(),
		FontSize.Key(),
		FontFamily.Key(),
		Appearance.Key(),
		LineHeight.Key(),
		PageMargins.Key(),
		WordSpacing.Key(),
		LetterSpacing.Key(),
		TextAlignment.Key(),
		Hyphens.Key(),
		Columns.Key(),
		Progression.Key(),
		Language.Key(),
	}
}
