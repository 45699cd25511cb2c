package platform

import (
	"fmt"
	"strings"
	"sync"
)

// ForbiddenChars are removed from every name that becomes a path segment
const ForbiddenChars = `?/,*"|`

var forbiddenReplacer = strings.NewReplacer(
	"?", "",
	"/", "",
	",", "",
	"*", "",
	`"`, "",
	"|", "",
)

// Sanitize deletes the forbidden characters from text. It never fails and
// Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(text string) string {
	return forbiddenReplacer.Replace(text)
}

// SanitizeFilename sanitizes text and trims surrounding whitespace so it can
// be used as a whole path segment.
func SanitizeFilename(text string) string {
	return strings.TrimSpace(Sanitize(text))
}

// NameRegistry hands out unique file stems per directory for the lifetime of
// one batch. The first claim of a name gets it unchanged; later claims get a
// numeric suffix.
type NameRegistry struct {
	mu    sync.Mutex
	taken map[string]*nameClaim
}

// nameClaim remembers the spelling of the first claim and the last suffix
// handed out for it. Keys are case-folded, so "intro" after "Intro" is a
// collision and its suffix is built from "Intro".
type nameClaim struct {
	stem string
	n    int
}

// NewNameRegistry creates an empty registry
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{taken: make(map[string]*nameClaim)}
}

func registryKey(dir, stem string) string {
	return dir + "\x00" + strings.ToLower(stem)
}

// Reserve claims stem inside dir and returns the stem to use
func (r *NameRegistry) Reserve(dir, stem string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	claim, ok := r.taken[registryKey(dir, stem)]
	if !ok {
		r.taken[registryKey(dir, stem)] = &nameClaim{stem: stem, n: 1}
		return stem
	}

	for {
		claim.n++
		candidate := fmt.Sprintf("%s (%d)", claim.stem, claim.n)
		ckey := registryKey(dir, candidate)
		if _, used := r.taken[ckey]; !used {
			r.taken[ckey] = &nameClaim{stem: candidate, n: 1}
			return candidate
		}
	}
}
