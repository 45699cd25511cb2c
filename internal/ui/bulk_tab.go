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

// bulkTab collects a mixed queue of videos and playlists and downloads it in
// one go
type bulkTab struct {
	root  *RootUI
	queue *BulkQueue

	entry       *widget.Entry
	addBtn      *widget.Button
	downloadBtn *widget.Button
	clearBtn    *widget.Button
	list        *widget.List
	running     bool
	content     fyne.CanvasObject
}

func newBulkTab(root *RootUI) *bulkTab {
	t := &bulkTab{root: root, queue: NewBulkQueue()}

	t.entry = widget.NewEntry()
	t.entry.SetPlaceHolder(PlaceholderIdentifier)
	t.entry.OnChanged = func(text string) {
		if len(strings.TrimSpace(text)) >= MinInputLength {
			t.addBtn.Enable()
		} else {
			t.addBtn.Disable()
		}
	}

	t.addBtn = widget.NewButton(LabelAdd, t.onAdd)
	t.addBtn.Disable()

	t.downloadBtn = widget.NewButton(LabelDownloadAll, t.onDownloadAll)
	t.downloadBtn.Importance = widget.HighImportance
	t.downloadBtn.Disable()

	t.clearBtn = widget.NewButton(LabelClear, t.onClear)

	t.list = widget.NewList(t.queue.Len, t.createRow, t.updateRow)

	top := container.NewBorder(nil, nil, nil, t.addBtn, t.entry)
	bottom := container.NewHBox(t.downloadBtn, t.clearBtn)
	t.content = container.NewBorder(top, bottom, nil, nil, t.list)
	return t
}

func (t *bulkTab) createRow() fyne.CanvasObject {
	title := widget.NewLabel("")
	title.Truncation = fyne.TextTruncateEllipsis
	kind := widget.NewLabel("")
	remove := widget.NewButton(LabelRemove, nil)
	remove.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, container.NewHBox(kind, remove), title)
}

func (t *bulkTab) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	entry, ok := t.queue.At(id)
	if !ok {
		return
	}
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}
	title := row.Objects[0].(*widget.Label)
	right := row.Objects[1].(*fyne.Container)
	kind := right.Objects[0].(*widget.Label)
	remove := right.Objects[1].(*widget.Button)

	title.SetText(entry.Title)
	kind.SetText(entry.Type.String())
	remove.OnTapped = func() {
		if t.running {
			return
		}
		t.queue.Remove(id)
		t.list.Refresh()
		t.refreshButtons()
	}
}

// onAdd resolves the page title in the background and queues the entry
func (t *bulkTab) onAdd() {
	id, err := platform.ParseIdentifier(t.entry.Text)
	if err != nil {
		dialog.ShowError(errors.New(MsgInvalidInput), t.root.window)
		return
	}

	t.addBtn.Disable()
	t.addBtn.SetText(LabelAdding)

	go func() {
		title, err := platform.LookupTitle(t.root.ctx, t.root.httpClient, id)
		if err != nil {
			t.root.log.Warn().Err(err).Str("id", id).Msg("title lookup failed")
			title = id
		}

		fyne.Do(func() {
			t.queue.Add(model.NewQueueEntry(title, id))
			t.entry.SetText("")
			t.addBtn.SetText(LabelAdd)
			t.list.Refresh()
			t.refreshButtons()
		})
	}()
}

// onDownloadAll runs the queue. The buttons stay disabled until every entry
// has been accounted for by its sub-batch.
func (t *bulkTab) onDownloadAll() {
	entries := t.queue.Entries()
	if len(entries) == 0 {
		return
	}
	root, err := t.root.destinationRoot()
	if err != nil {
		dialog.ShowError(err, t.root.window)
		return
	}

	tracker := model.NewCompletionTracker(len(entries))
	t.running = true
	t.downloadBtn.SetText(LabelDownloading)
	t.refreshButtons()
	t.root.showNotification(LabelDownloading, true)

	reports := t.root.coordinator().RunQueue(t.root.ctx, entries, root, download.ListenerFuncs{
		Status: t.root.onBatchStatus,
		Progress: func(n int) {
			if tracker.Add(n) {
				fyne.Do(func() {
					t.running = false
					t.downloadBtn.SetText(LabelDownloadAll)
					t.refreshButtons()
				})
			}
		},
	})

	go func() {
		merged := &model.BatchReport{Requested: len(entries)}
		for report := range reports {
			merged.Albums = append(merged.Albums, report.Albums...)
			merged.Results = append(merged.Results, report.Results...)
		}
		fyne.Do(func() { t.root.reportFinished(merged) })
	}()
}

func (t *bulkTab) onClear() {
	if t.running {
		return
	}
	t.queue.Clear()
	t.list.Refresh()
	t.refreshButtons()
}

// refreshButtons syncs button state with the queue and the running flag
func (t *bulkTab) refreshButtons() {
	if t.running || t.queue.Len() == 0 {
		t.downloadBtn.Disable()
	} else {
		t.downloadBtn.Enable()
	}
	if t.running {
		t.clearBtn.Disable()
	} else {
		t.clearBtn.Enable()
	}
}
