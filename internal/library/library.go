package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// TrackExtension is the extension counted as a finished track
const TrackExtension = ".mp3"

// EntryKind tells albums, tracks and anything else apart
type EntryKind int

const (
	EntryOther EntryKind = iota
	EntryAlbum
	EntryTrack
)

// Entry is one top-level item of the library root
type Entry struct {
	Name string
	Path string
	Kind EntryKind

	// Tracks is the number of tracks directly inside an album directory
	Tracks int
}

// Listing is a snapshot of a library root
type Listing struct {
	Root    string
	Entries []Entry
}

// Scan lists the top level of root. Hidden entries are skipped; entries are
// sorted by name, case-insensitively.
func Scan(root string) (Listing, error) {
	listing := Listing{Root: root}
	if root == "" {
		return listing, fmt.Errorf("library root is not set")
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return listing, fmt.Errorf("reading library root: %w", err)
	}

	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := Entry{Name: name, Path: filepath.Join(root, name)}
		switch {
		case de.IsDir():
			entry.Kind = EntryAlbum
			entry.Tracks = countTracks(entry.Path)
		case isTrack(name):
			entry.Kind = EntryTrack
		}
		listing.Entries = append(listing.Entries, entry)
	}

	sort.SliceStable(listing.Entries, func(i, j int) bool {
		return strings.ToLower(listing.Entries[i].Name) < strings.ToLower(listing.Entries[j].Name)
	})
	return listing, nil
}

// Albums returns the number of album directories
func (l Listing) Albums() int {
	return lo.CountBy(l.Entries, func(e Entry) bool { return e.Kind == EntryAlbum })
}

// Tracks returns the number of tracks, loose ones plus those inside albums
func (l Listing) Tracks() int {
	return lo.SumBy(l.Entries, func(e Entry) int {
		if e.Kind == EntryTrack {
			return 1
		}
		return e.Tracks
	})
}

// Filter keeps entries whose name contains query, ignoring case. An empty
// query returns the listing unchanged.
func (l Listing) Filter(query string) Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l
	}
	return Listing{
		Root: l.Root,
		Entries: lo.Filter(l.Entries, func(e Entry, _ int) bool {
			return strings.Contains(strings.ToLower(e.Name), query)
		}),
	}
}

func countTracks(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	return lo.CountBy(entries, func(de os.DirEntry) bool {
		return !de.IsDir() && isTrack(de.Name())
	})
}

func isTrack(name string) bool {
	return strings.EqualFold(filepath.Ext(name), TrackExtension)
}
