package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-album-downloader/internal/library"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// libraryTab browses a library root: albums, loose tracks and totals
type libraryTab struct {
	root *RootUI

	listing library.Listing
	visible library.Listing

	folderLabel *widget.Label
	search      *widget.Entry
	albumsLabel *widget.Label
	tracksLabel *widget.Label
	list        *widget.List
	content     fyne.CanvasObject
}

func newLibraryTab(root *RootUI) *libraryTab {
	t := &libraryTab{root: root}

	t.folderLabel = widget.NewLabel(PlaceholderFolder)
	t.folderLabel.Truncation = fyne.TextTruncateEllipsis
	browseBtn := widget.NewButton(LabelBrowse, t.onBrowse)
	refreshBtn := widget.NewButton(LabelRefresh, t.reload)

	t.search = widget.NewEntry()
	t.search.SetPlaceHolder(PlaceholderSearch)
	t.search.OnChanged = func(string) { t.applyFilter() }
	clearBtn := widget.NewButton(IconClose, func() { t.search.SetText("") })
	clearBtn.Importance = widget.LowImportance

	t.albumsLabel = widget.NewLabel("")
	t.tracksLabel = widget.NewLabel("")

	t.list = widget.NewList(
		func() int { return len(t.visible.Entries) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			return name
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(t.visible.Entries) {
				return
			}
			obj.(*widget.Label).SetText(entryLabel(t.visible.Entries[id]))
		},
	)
	t.list.OnSelected = t.onSelected

	folderRow := container.NewBorder(nil, nil, widget.NewLabel(IconFolder), container.NewHBox(browseBtn, refreshBtn), t.folderLabel)
	searchRow := container.NewBorder(nil, nil, nil, clearBtn, t.search)
	totals := container.NewHBox(t.albumsLabel, t.tracksLabel)

	t.content = container.NewBorder(container.NewVBox(folderRow, searchRow), totals, nil, nil, t.list)
	t.reload()
	return t
}

// reload rescans the library root
func (t *libraryTab) reload() {
	dir := t.root.settings.GetLibraryRoot()
	t.folderLabel.SetText(dir)

	listing, err := library.Scan(dir)
	if err != nil {
		t.root.log.Debug().Err(err).Str("dir", dir).Msg("library scan failed")
	}
	t.listing = listing
	t.applyFilter()
}

func (t *libraryTab) applyFilter() {
	t.visible = t.listing.Filter(t.search.Text)
	t.albumsLabel.SetText(fmt.Sprintf(TotalAlbumsFormat, t.visible.Albums()))
	t.tracksLabel.SetText(fmt.Sprintf(TotalTracksFormat, t.visible.Tracks()))
	t.list.UnselectAll()
	t.list.Refresh()
}

func (t *libraryTab) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		t.root.settings.SetLibraryRoot(uri.Path())
		t.reload()
	}, t.root.window)
}

// onSelected opens an album folder, or the folder holding a loose track
func (t *libraryTab) onSelected(id widget.ListItemID) {
	if id >= len(t.visible.Entries) {
		return
	}
	entry := t.visible.Entries[id]
	target := entry.Path
	if entry.Kind != library.EntryAlbum {
		target = filepath.Dir(entry.Path)
	}
	if err := platform.OpenFolder(target); err != nil {
		t.root.log.Error().Err(err).Str("dir", target).Msg("could not open folder")
		dialog.ShowError(err, t.root.window)
	}
	t.list.Unselect(id)
}

// entryLabel renders one listing row
func entryLabel(e library.Entry) string {
	switch e.Kind {
	case library.EntryAlbum:
		return fmt.Sprintf("%s %s (%d)", IconFolder, e.Name, e.Tracks)
	case library.EntryTrack:
		return IconMusic + " " + e.Name
	default:
		return e.Name
	}
}
