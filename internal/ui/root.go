package ui

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/app"
	"github.com/ytget/yt-album-downloader/internal/config"
	"github.com/ytget/yt-album-downloader/internal/download"
	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// PipelineFactory builds a pipeline from the current settings. It is called
// once per batch so changed settings apply to the next download.
type PipelineFactory func() *app.Pipeline

// RootUI represents the main UI structure
type RootUI struct {
	ctx         context.Context
	window      fyne.Window
	settings    *config.Settings
	newPipeline PipelineFactory
	httpClient  *http.Client
	log         zerolog.Logger

	tabs    *container.AppTabs
	single  *singleTab
	bulk    *bulkTab
	library *libraryTab

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
// httpClient is used for title lookups on the bulk tab.
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, newPipeline PipelineFactory, httpClient *http.Client, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		ctx:         ctx,
		window:      window,
		settings:    settings,
		newPipeline: newPipeline,
		httpClient:  httpClient,
		log:         log,
	}
	window.SetTitle(AppTitle)
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Notification panel above the tabs (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.single = newSingleTab(ui)
	ui.bulk = newBulkTab(ui)
	ui.library = newLibraryTab(ui)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(TabSingle, ui.single.content),
		container.NewTabItem(TabBulk, ui.bulk.content),
		container.NewTabItem(TabLibrary, ui.library.content),
	)
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item.Text == TabLibrary {
			ui.library.reload()
		}
	}

	ui.window.SetContent(container.NewBorder(ui.notificationContainer, nil, nil, nil, ui.tabs))
	ui.log.Debug().Msg("ui setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(LabelSettings, ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(LabelFile, settingsItem)))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.showNotification(MsgSettingsSaved, false)
		ui.library.reload()
	})
}

// destinationRoot returns the configured root, creating it when missing
func (ui *RootUI) destinationRoot() (string, error) {
	root := ui.settings.GetDestinationRoot()
	if root == "" {
		return "", fmt.Errorf("%s", MsgNoDestination)
	}
	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		return "", fmt.Errorf("%s: %w", MsgNoDestination, err)
	}
	return root, nil
}

// coordinator builds a fresh pipeline whose per-item results drive the
// notification panel
func (ui *RootUI) coordinator() *download.Coordinator {
	pipeline := ui.newPipeline()
	var finished atomic.Int32
	pipeline.Coordinator.SetResultCallback(func(res model.DownloadResult) {
		n := finished.Add(1)
		if !res.Success {
			ui.log.Warn().Str("source", res.SourceID).Msg(res.Message)
		}
		ui.showNotification(fmt.Sprintf(MsgItemDone, n), true)
	})
	return pipeline.Coordinator
}

// reportFinished shows the outcome of a batch. Must run on the UI goroutine.
func (ui *RootUI) reportFinished(report *model.BatchReport) {
	ui.notificationSpinner.Hide()
	ui.notificationLabel.SetText(summarize(report))
	ui.notificationContainer.Show()
	ui.showToast(report.Status().String(), summarize(report))
	if ui.library != nil {
		ui.library.reload()
	}
}

// onBatchStatus mirrors a batch's progress in the notification panel.
// Finished statuses are left to reportFinished.
func (ui *RootUI) onBatchStatus(kind model.BatchKind, status model.BatchStatus) {
	if status.IsFinished() {
		return
	}
	ui.showNotification(statusLine(kind, status), status.IsActive())
}

func statusLine(kind model.BatchKind, status model.BatchStatus) string {
	return fmt.Sprintf(MsgBatchStatus, kind, status)
}

// summarize renders a one-line batch outcome
func summarize(report *model.BatchReport) string {
	msg := fmt.Sprintf(MsgBatchSummary, report.Succeeded(), report.Failed())
	if report.Partial() {
		msg += " (playlist page incomplete)"
	}
	for _, album := range report.Albums {
		if album.Error != "" {
			msg += fmt.Sprintf("; %s: %s", album.PlaylistID, album.Error)
		}
	}
	return msg
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// showToast shows a small popup in the top-right corner that hides itself
func (ui *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(container.NewBorder(nil, nil, titleLabel, closeBtn), messageLabel)
	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
