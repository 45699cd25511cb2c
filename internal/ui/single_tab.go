package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-album-downloader/internal/download"
	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// singleTab downloads one video or one playlist
type singleTab struct {
	root    *RootUI
	entry   *widget.Entry
	button  *widget.Button
	busy    bool
	content fyne.CanvasObject
}

func newSingleTab(root *RootUI) *singleTab {
	t := &singleTab{root: root}

	t.entry = widget.NewEntry()
	t.entry.SetPlaceHolder(PlaceholderIdentifier)
	t.entry.OnChanged = t.onChanged
	t.entry.OnSubmitted = func(string) {
		if !t.button.Disabled() {
			t.onDownload()
		}
	}

	t.button = widget.NewButton(LabelDownload, t.onDownload)
	t.button.Importance = widget.HighImportance
	t.button.Disable()

	t.content = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(IconMusic), t.button, t.entry),
	)
	return t
}

// onChanged enables the button once the input is long enough
func (t *singleTab) onChanged(text string) {
	if !t.busy && len(strings.TrimSpace(text)) >= MinInputLength {
		t.button.Enable()
	} else {
		t.button.Disable()
	}
}

func (t *singleTab) onDownload() {
	id, err := platform.ParseIdentifier(t.entry.Text)
	if err != nil {
		dialog.ShowError(errors.New(MsgInvalidInput), t.root.window)
		return
	}
	root, err := t.root.destinationRoot()
	if err != nil {
		dialog.ShowError(err, t.root.window)
		return
	}

	req := model.NewSingleRequest(id)
	if model.ClassifyIdentifier(id) == model.KindPlaylist {
		req = model.NewPlaylistRequest(id)
	}

	t.busy = true
	t.button.Disable()
	t.button.SetText(LabelDownloading)
	t.root.showNotification(LabelDownloading+" "+id, true)
	t.root.log.Info().Str("id", id).Str("kind", req.Kind.String()).Msg("single download requested")

	t.root.coordinator().Start(t.root.ctx, req, root, download.ListenerFuncs{
		Status: t.root.onBatchStatus,
		Finished: func(report *model.BatchReport) {
			fyne.Do(func() {
				t.busy = false
				t.button.SetText(LabelDownload)
				t.entry.SetText("")
				t.root.reportFinished(report)
			})
		},
	})
}
