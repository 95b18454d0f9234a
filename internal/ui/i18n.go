package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *AgeApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *AgeApp) UpdateLocalizer() {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg translates a key, returning the key itself when no translation exists.
func (app *AgeApp) GetMsg(key string) string {
	return app.localize(key, key, nil, nil)
}

// msgOr translates a key, returning fallback when no translation exists.
func (app *AgeApp) msgOr(key, fallback string) string {
	return app.localize(key, fallback, nil, nil)
}

func (app *AgeApp) localize(key, fallback string, data map[string]interface{}, count interface{}) string {
	if app.Localizer == nil {
		return fallback
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return fallback
	}
	return msg
}

// Summary renders r in the current language, e.g. "1 an, 2 mois".
func (app *AgeApp) Summary(r engine.AgeResult) string {
	units := []struct {
		key string
		n   int
	}{
		{config.TKeyUnitYears, r.Years},
		{config.TKeyUnitMonths, r.Months},
		{config.TKeyUnitDays, r.Days},
	}

	var parts []string
	for _, u := range units {
		if u.n == 0 {
			continue
		}
		part := app.localize(u.key, "", map[string]interface{}{"Count": u.n}, u.n)
		if part == "" {
			return r.String()
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return app.msgOr(config.TKeyResultLessDay, config.FallbackLessThanDay)
	}
	return strings.Join(parts, app.msgOr(config.TKeyResultSep, config.FallbackSeparator))
}

// ErrorMessage maps a calculation failure to the text shown in the error banner.
func (app *AgeApp) ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingBirthDate):
		return app.msgOr(config.TKeyErrMissing, config.ErrMissingBirth)
	case errors.Is(err, engine.ErrInvalidDate):
		return app.msgOr(config.TKeyErrInvalid, config.ErrInvalidDate)
	case errors.Is(err, engine.ErrFutureBirthDate):
		return app.msgOr(config.TKeyErrFuture, config.ErrFutureBirthDate)
	default:
		return app.msgOr(config.TKeyErrUnexpected, config.ErrUnexpected)
	}
}

// buildSummaryFormatter returns a closure that localizes calendar event summaries.
func (app *AgeApp) buildSummaryFormatter() func(age int) string {
	return func(age int) string {
		if age == 0 {
			return app.msgOr(config.TKeyEvtSummaryBorn, config.FallbackSummaryBirth)
		}
		msg := app.localize(config.TKeyEvtSummaryAge, "", map[string]interface{}{"Age": age}, nil)
		if msg == "" {
			return fmt.Sprintf(config.FallbackSummaryAge, age)
		}
		return msg
	}
}
