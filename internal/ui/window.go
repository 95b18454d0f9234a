package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
)

// calculatorView holds the widgets that render Calculator state.
type calculatorView struct {
	referenceEntry *DateEntry
	birthEntry     *DateEntry
	errorBanner    *widget.Label
	calculateBtn   *widget.Button
	resetBtn       *widget.Button
	copyLinkBtn    *widget.Button
	summary        *widget.Label
	tiles          []*canvas.Text // years, months, days
}

// ShowMainWindow opens the calculator window, or focuses it if already open.
func (app *AgeApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}
	if app.State == nil {
		app.State = NewCalculator(app.Clock)
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.SetMaster()
	w.SetContent(app.buildContent())
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() {
		app.Window = nil
		app.view = nil
	})
	w.Show()
}

// rebuild recreates the window content from State, e.g. after a language change.
func (app *AgeApp) rebuild() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(app.buildContent())
}

func (app *AgeApp) buildContent() fyne.CanvasObject {
	v := &calculatorView{}
	app.view = v

	// --- Header ---
	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyWinTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	subtitle := widget.NewLabelWithStyle(app.GetMsg(config.TKeyAppSubtitle), fyne.TextAlignCenter, fyne.TextStyle{})
	subtitle.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		app.buildToolbar(v),
		title,
		subtitle,
		container.NewGridWithColumns(config.LayoutColumnsDouble, app.buildFormCard(v), app.buildResultCard(v)),
		app.buildFooter(),
	)

	app.render()
	return container.NewVScroll(container.NewPadded(content))
}

// buildToolbar holds the language and theme selectors and the secondary actions.
func (app *AgeApp) buildToolbar(v *calculatorView) fyne.CanvasObject {
	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	langSelect.OnChanged = app.ChangeLanguage

	labels := app.themeLabels()
	themeSelect := widget.NewSelect(labels, nil)
	current := app.Preferences.StringWithFallback(config.PrefTheme, config.DefaultTheme)
	for i, name := range config.SupportedThemes {
		if name == current {
			themeSelect.SetSelected(labels[i])
		}
	}
	themeSelect.OnChanged = func(string) {
		app.ApplyTheme(config.SupportedThemes[themeSelect.SelectedIndex()])
	}

	importBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.showImportDialog)
	v.copyLinkBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCopyLink), theme.ContentCopyIcon(), app.CopyCalendarLink)

	return container.NewHBox(
		widget.NewLabel(app.GetMsg(config.TKeyLblLanguage)), langSelect,
		widget.NewLabel(app.GetMsg(config.TKeyLblTheme)), themeSelect,
		layout.NewSpacer(),
		importBtn, v.copyLinkBtn,
	)
}

func (app *AgeApp) buildFormCard(v *calculatorView) fyne.CanvasObject {
	// Text is set before OnChanged so that building the view does not write back into State.
	v.referenceEntry = NewDateEntry()
	v.referenceEntry.SetText(app.State.ReferenceDate)
	v.referenceEntry.OnChanged = func(s string) {
		app.State.ReferenceDate = s
	}

	v.birthEntry = NewDateEntry()
	v.birthEntry.SetText(app.State.BirthDate)
	v.birthEntry.OnChanged = func(s string) {
		app.State.BirthDate = s
		app.refreshButtons()
	}

	itemRef := widget.NewFormItem(app.GetMsg(config.TKeyLblReference), v.referenceEntry)
	itemRef.HintText = app.GetMsg(config.TKeyHelpReference)
	itemBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirth), v.birthEntry)
	itemBirth.HintText = app.GetMsg(config.TKeyHelpBirth)
	form := widget.NewForm(itemRef, itemBirth)

	v.errorBanner = widget.NewLabel("")
	v.errorBanner.Importance = widget.DangerImportance
	v.errorBanner.Wrapping = fyne.TextWrapWord

	v.calculateBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	v.calculateBtn.Importance = widget.HighImportance
	v.resetBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ContentUndoIcon(), app.Reset)

	privacy := widget.NewLabelWithStyle(app.GetMsg(config.TKeyLblPrivacy), fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	privacy.Wrapping = fyne.TextWrapWord

	return widget.NewCard(app.GetMsg(config.TKeyFormTitle), "", container.NewVBox(
		widget.NewLabel(app.GetMsg(config.TKeyFormDesc)),
		form,
		v.errorBanner,
		container.NewGridWithColumns(config.LayoutColumnsDouble, v.resetBtn, v.calculateBtn),
		privacy,
	))
}

func (app *AgeApp) buildResultCard(v *calculatorView) fyne.CanvasObject {
	v.summary = widget.NewLabel("")
	v.summary.Wrapping = fyne.TextWrapWord

	tiles := make([]fyne.CanvasObject, 0, config.ResultTileCount)
	for _, key := range []string{config.TKeyTileYears, config.TKeyTileMonths, config.TKeyTileDays} {
		value := canvas.NewText(config.ResultPlaceholder, theme.Color(theme.ColorNamePrimary))
		value.TextSize = theme.TextHeadingSize() * 2
		value.TextStyle = fyne.TextStyle{Bold: true}
		value.Alignment = fyne.TextAlignCenter
		v.tiles = append(v.tiles, value)

		caption := widget.NewLabelWithStyle(app.GetMsg(key), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		tiles = append(tiles, widget.NewCard("", "", container.NewVBox(value, caption)))
	}

	return widget.NewCard(app.GetMsg(config.TKeyResultTitle), "", container.NewVBox(
		v.summary,
		container.NewGridWithColumns(config.ResultTileCount, tiles...),
	))
}

func (app *AgeApp) buildFooter() fyne.CanvasObject {
	text := app.localize(config.TKeyLblFooter, config.AppName, map[string]interface{}{"Year": app.Clock.Now().Year()}, nil)
	footer := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	footer.Wrapping = fyne.TextWrapWord
	return footer
}

// render copies State into the widgets.
func (app *AgeApp) render() {
	v := app.view
	if v == nil {
		return
	}
	s := app.State

	if v.referenceEntry.Text != s.ReferenceDate {
		v.referenceEntry.SetText(s.ReferenceDate)
	}
	if v.birthEntry.Text != s.BirthDate {
		v.birthEntry.SetText(s.BirthDate)
	}

	if s.Err != nil {
		v.errorBanner.SetText(app.ErrorMessage(s.Err))
		v.errorBanner.Show()
	} else {
		v.errorBanner.SetText("")
		v.errorBanner.Hide()
	}

	values := []string{config.ResultPlaceholder, config.ResultPlaceholder, config.ResultPlaceholder}
	if s.Result != nil {
		v.summary.SetText(app.Summary(*s.Result))
		values = []string{strconv.Itoa(s.Result.Years), strconv.Itoa(s.Result.Months), strconv.Itoa(s.Result.Days)}
	} else {
		v.summary.SetText(app.GetMsg(config.TKeyResultEmpty))
	}
	for i, tile := range v.tiles {
		tile.Text = values[i]
		tile.Refresh()
	}

	app.refreshButtons()
}

// refreshButtons mirrors the enablement rules of the form.
func (app *AgeApp) refreshButtons() {
	v := app.view
	if v == nil {
		return
	}
	setEnabled(v.calculateBtn, app.State.CanCalculate())
	setEnabled(v.resetBtn, app.State.CanReset())
	setEnabled(v.copyLinkBtn, app.Server.Ready())
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
