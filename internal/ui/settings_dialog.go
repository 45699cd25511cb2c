package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-album-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	destinationEntry *widget.Entry
	workersEntry     *widget.Entry
	modeSelect       *widget.Select
	tagCheck         *widget.Check
}

// ShowSettingsDialog creates and shows the dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := NewSettingsDialog(settings, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.destinationEntry = widget.NewEntry()
	sd.destinationEntry.SetPlaceHolder("Destination folder")
	browseBtn := widget.NewButton(LabelBrowse, sd.onBrowseDirectory)
	destinationRow := container.NewBorder(nil, nil, nil, browseBtn, sd.destinationEntry)

	sd.workersEntry = widget.NewEntry()
	sd.workersEntry.SetPlaceHolder(strconv.Itoa(config.MinWorkers) + "-" + strconv.Itoa(config.MaxWorkers))

	sd.modeSelect = widget.NewSelect([]string{config.ScraperModeBrowser, config.ScraperModeLibrary}, nil)
	sd.tagCheck = widget.NewCheck("Write album and track tags", nil)

	form := container.NewVBox(
		widget.NewLabel("Destination Folder:"),
		destinationRow,

		widget.NewLabel("Parallel Downloads:"),
		sd.workersEntry,

		widget.NewLabel("Playlist Resolver:"),
		sd.modeSelect,

		sd.tagCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		LabelSettings,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.destinationEntry.SetText(sd.settings.GetDestinationRoot())
	sd.workersEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))
	sd.modeSelect.SetSelected(sd.settings.GetScraperMode())
	sd.tagCheck.SetChecked(sd.settings.GetTagFiles())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.destinationEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.destinationEntry.Text; dir != "" {
		sd.settings.SetDestinationRoot(dir)
	}

	if workers, err := strconv.Atoi(sd.workersEntry.Text); err == nil {
		sd.settings.SetMaxParallelDownloads(workers)
	}

	if sd.modeSelect.Selected != "" {
		sd.settings.SetScraperMode(sd.modeSelect.Selected)
	}

	sd.settings.SetTagFiles(sd.tagCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
