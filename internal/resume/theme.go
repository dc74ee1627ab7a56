package resume

// Font-size and spacing tiers. Templates interpret the tiers; the ATS
// renderer maps them to point sizes directly.
const (
	FontSizeSmall  = "small"
	FontSizeMedium = "medium"
	FontSizeLarge  = "large"

	SpacingCompact  = "compact"
	SpacingNormal   = "normal"
	SpacingSpacious = "spacious"

	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// ThemeSettings is persisted alongside the document but independent of it;
// undo never touches it.
type ThemeSettings struct {
	PrimaryColor string `json:"primaryColor"`
	FontFamily   string `json:"fontFamily"`
	FontSize     string `json:"fontSize"`
	Spacing      string `json:"spacing"`
	PageSize     string `json:"pageSize"`
}

// DefaultTheme returns the theme applied to new documents and filled in by
// the migrator when themeSettings is absent.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		PrimaryColor: "#1a5fb4",
		FontFamily:   "Inter",
		FontSize:     FontSizeMedium,
		Spacing:      SpacingNormal,
		PageSize:     PageSizeLetter,
	}
}

// ShareSettings is a persisted sibling of the document controlling public
// read-only links. The engine only round-trips it.
type ShareSettings struct {
	Public bool   `json:"public"`
	Slug   string `json:"slug"`
}

// DefaultShareSettings returns a private share state.
func DefaultShareSettings() ShareSettings {
	return ShareSettings{Public: false, Slug: ""}
}

// DetailedATSScore is the breakdown behind Document.ATSScore.
type DetailedATSScore struct {
	Overall  int            `json:"overall"`
	Sections map[string]int `json:"sections"`
}

// DefaultDetailedATSScore returns an empty, never-computed breakdown.
func DefaultDetailedATSScore() DetailedATSScore {
	return DetailedATSScore{Overall: 0, Sections: map[string]int{}}
}
