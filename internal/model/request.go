package model

import "strings"

// VideoIDLength is the length of a platform video id. Anything longer is
// treated as a playlist id.
const VideoIDLength = 11

// BatchKind selects the download path for a batch
type BatchKind string

const (
	// KindSingle downloads each identifier as a standalone track into the root
	KindSingle BatchKind = "single"

	// KindPlaylist resolves each identifier into an album directory
	KindPlaylist BatchKind = "playlist"
)

// String returns the string representation of BatchKind
func (k BatchKind) String() string {
	return string(k)
}

// BatchRequest is a tagged union of the two batch shapes. The kind is decided
// by the caller and never inferred from the identifiers.
type BatchRequest struct {
	Kind        BatchKind
	Identifiers []string
}

// NewSingleRequest builds a request that downloads standalone tracks
func NewSingleRequest(ids ...string) BatchRequest {
	return BatchRequest{Kind: KindSingle, Identifiers: compactIDs(ids)}
}

// NewPlaylistRequest builds a request that downloads whole playlists as albums
func NewPlaylistRequest(ids ...string) BatchRequest {
	return BatchRequest{Kind: KindPlaylist, Identifiers: compactIDs(ids)}
}

// IsEmpty reports whether there is nothing to download
func (r BatchRequest) IsEmpty() bool {
	return len(r.Identifiers) == 0
}

// QueueEntry is one line of the bulk queue shown to the user
type QueueEntry struct {
	Title string
	Type  BatchKind
	ID    string
}

// ClassifyIdentifier returns KindPlaylist for ids longer than a video id
func ClassifyIdentifier(id string) BatchKind {
	if len(strings.TrimSpace(id)) > VideoIDLength {
		return KindPlaylist
	}
	return KindSingle
}

// NewQueueEntry builds a queue entry, classifying the id by its length
func NewQueueEntry(title, id string) QueueEntry {
	id = strings.TrimSpace(id)
	return QueueEntry{Title: title, Type: ClassifyIdentifier(id), ID: id}
}

// SplitQueue groups queue entries into a single-track request and a playlist
// request, preserving queue order inside each group.
func SplitQueue(entries []QueueEntry) (singles, playlists BatchRequest) {
	singles = BatchRequest{Kind: KindSingle}
	playlists = BatchRequest{Kind: KindPlaylist}
	for _, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			continue
		}
		if e.Type == KindPlaylist {
			playlists.Identifiers = append(playlists.Identifiers, id)
		} else {
			singles.Identifiers = append(singles.Identifiers, id)
		}
	}
	return singles, playlists
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
