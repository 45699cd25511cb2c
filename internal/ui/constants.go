package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
	IconClose    = "×"
)

// Labels
const (
	AppTitle = "YT Album Downloader"

	TabSingle  = "Single"
	TabBulk    = "Bulk"
	TabLibrary = "Library"

	LabelDownload    = "Download"
	LabelDownloadAll = "Download All"
	LabelDownloading = "Downloading..."
	LabelAdd         = "Add"
	LabelAdding      = "Adding..."
	LabelClear       = "Clear"
	LabelRemove      = "Remove"
	LabelBrowse      = "Browse"
	LabelSettings    = "Settings"
	LabelFile        = "File"
	LabelRefresh     = "Refresh"

	PlaceholderIdentifier = "Video or playlist URL or ID"
	PlaceholderSearch     = "Search"
	PlaceholderFolder     = "No folder selected"

	TotalAlbumsFormat = "Total Albums: %d"
	TotalTracksFormat = "Total Tracks: %d"
)

// Messages
const (
	MsgNoDestination = "Define a folder path to download files"
	MsgInvalidInput  = "Invalid URL"
	MsgBatchSummary  = "%d downloaded, %d failed"
	MsgItemDone      = "Finished %d of this batch"
	MsgBatchStatus   = "%s batch: %s"
	MsgSettingsSaved = "Settings saved"
)

// Input rules
const (
	// MinInputLength is the shortest input that enables the download buttons
	MinInputLength = 6
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Layout sizing
const (
	WindowWidth     float32 = 800
	WindowHeight    float32 = 600
	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 380
)
