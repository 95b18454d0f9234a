package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-age/internal/config"
)

// variantTheme pins the default theme to one variant, ignoring the OS setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// themeFor maps a theme preference value to a fyne.Theme.
// Unknown values follow the system.
func themeFor(name string) fyne.Theme {
	switch name {
	case config.ThemeLight:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	case config.ThemeDark:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	default:
		return theme.DefaultTheme()
	}
}

// ApplyTheme stores the theme preference and applies it to every window.
func (app *AgeApp) ApplyTheme(name string) {
	app.Preferences.SetString(config.PrefTheme, name)
	app.App.Settings().SetTheme(themeFor(name))

	slog.Info(config.MsgThemeChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTheme, name)

	// Result tiles are canvas.Text with a fixed color.
	app.rebuild()
}

// themeLabels returns the localized theme names in config.SupportedThemes order.
func (app *AgeApp) themeLabels() []string {
	keys := map[string]string{
		config.ThemeSystem: config.TKeyThemeSystem,
		config.ThemeLight:  config.TKeyThemeLight,
		config.ThemeDark:   config.TKeyThemeDark,
	}
	labels := make([]string, 0, len(config.SupportedThemes))
	for _, name := range config.SupportedThemes {
		labels = append(labels, app.GetMsg(keys[name]))
	}
	return labels
}
