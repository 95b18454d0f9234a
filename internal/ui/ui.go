package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/server"
)

// AgeApp encapsulates the UI state, preferences, and the services behind the window.
type AgeApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server   *server.CalendarServer
	Importer *engine.Importer
	Clock    engine.Clock // Injected clock for testability.

	// State is the form content. It lives only as long as the process.
	State *Calculator

	SupportedLanguages []string

	contactName string // set by a vCard import, used for the calendar UID
	view        *calculatorView
}

// NewAgeApp constructs the application and wires dependencies.
func NewAgeApp(a fyne.App, ctx context.Context, srv *server.CalendarServer, importer *engine.Importer) *AgeApp {
	return &AgeApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Importer:           importer,
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the calendar server and the main UI loop.
func (app *AgeApp) Run() {
	app.SetupI18n()
	app.App.Settings().SetTheme(themeFor(app.Preferences.StringWithFallback(config.PrefTheme, config.DefaultTheme)))

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.ShowMainWindow()
	app.App.Run()
}

// Calculate runs the calculation for the current form and publishes the birthday feed.
// Failures are reported in the error banner and withdraw any previous result.
func (app *AgeApp) Calculate() {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	if err := app.State.Calculate(); err != nil {
		log.Info(config.MsgCalcRejected, config.LogKeyError, err)
		app.Server.Clear()
		app.render()
		return
	}

	r := app.State.Result
	log.Info(config.MsgAgeComputed,
		config.LogKeyYears, r.Years,
		config.LogKeyMonths, r.Months,
		config.LogKeyDays, r.Days)
	log.Debug(config.MsgAgeComputed,
		config.LogKeyReference, app.State.ReferenceDate,
		config.LogKeyDOB, app.State.BirthDate)

	app.publishCalendar()
	app.render()
}

// Reset clears the birth date, the result and the served feed.
func (app *AgeApp) Reset() {
	app.State.Reset()
	app.contactName = ""
	app.Server.Clear()
	slog.Info(config.MsgStateReset, config.LogKeyComponent, config.CompUI)
	app.render()
}

// publishCalendar renders the anniversaries of the calculated birth date for the server.
func (app *AgeApp) publishCalendar() {
	birth, errBirth := engine.ParseDate(app.State.BirthDate)
	ref, errRef := engine.ParseDate(app.State.ReferenceDate)
	if err := errors.Join(errBirth, errRef); err != nil {
		slog.Error(config.ErrCalendarBuild, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		app.Server.Clear()
		return
	}

	name := app.contactName
	if name == "" {
		name = config.FallbackName
	}

	gen := &engine.CalendarGenerator{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}
	data, err := gen.Generate(engine.Contact{Name: name, BirthDate: birth}, ref)
	if err != nil {
		slog.Error(config.ErrCalendarBuild, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		app.Server.Clear()
		return
	}
	app.Server.Update(data)
}

// ImportContact fills the birth date from the first usable card at location.
// The calculation itself still waits for the user.
func (app *AgeApp) ImportContact(location string) error {
	c, err := app.Importer.Import(app.Ctx, location)
	if err != nil {
		slog.Error(config.ErrImportFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return err
	}

	app.contactName = c.Name
	app.State.BirthDate = c.BirthDate.String()
	app.render()

	app.App.SendNotification(fyne.NewNotification(config.AppName,
		app.localize(config.TKeyNotifImported, c.Name, map[string]interface{}{"Name": c.Name}, nil)))
	return nil
}

// showImportDialog lets the user pick a .vcf file to import.
func (app *AgeApp) showImportDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		path := r.URI().Path()
		_ = r.Close()

		if err := app.ImportContact(path); err != nil {
			dialog.ShowError(errors.New(app.msgOr(config.TKeyErrImport, config.ErrNoBirthday)), app.Window)
		}
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// CopyCalendarLink puts the birthday feed URL on the clipboard.
func (app *AgeApp) CopyCalendarLink() {
	if !app.Server.Ready() {
		return
	}
	app.App.Clipboard().SetContent(app.Server.URL())
	app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifLinkCopy)))
}

// ChangeLanguage switches the UI language and rebuilds the window in place.
func (app *AgeApp) ChangeLanguage(lang string) {
	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()

	slog.Info(config.MsgLangChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang)

	app.rebuild()
}
