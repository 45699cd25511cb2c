package platform

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Song Title", "Song Title"},
		{"question and slash", "What? AC/DC", "What ACDC"},
		{"comma star quote pipe", `a,b*c"d|e`, "abcde"},
		{"only forbidden", `?/,*"|`, ""},
		{"unicode kept", "Björk • Homogenic", "Björk • Homogenic"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Properties(t *testing.T) {
	inputs := []string{
		"Artist - Album, Vol. 2 (Remastered)",
		`"Quoted" | piped * starred ? / slashed`,
		"////",
		"normal",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.False(t, strings.ContainsAny(once, ForbiddenChars), "forbidden char left in %q", once)
		assert.Equal(t, once, Sanitize(once), "not idempotent for %q", in)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Album", SanitizeFilename("  Album?  "))
}

func TestNameRegistry_Reserve(t *testing.T) {
	r := NewNameRegistry()

	assert.Equal(t, "Intro", r.Reserve("/a", "Intro"))
	assert.Equal(t, "Intro (2)", r.Reserve("/a", "Intro"))
	assert.Equal(t, "Intro (3)", r.Reserve("/a", "intro"))
	assert.Equal(t, "Intro", r.Reserve("/b", "Intro"), "directories are independent")
}

func TestNameRegistry_SuffixKeepsFirstSpelling(t *testing.T) {
	r := NewNameRegistry()

	assert.Equal(t, "Song", r.Reserve("/a", "Song"))
	assert.Equal(t, "Song (2)", r.Reserve("/a", "SONG"))
	assert.Equal(t, "Song (3)", r.Reserve("/a", "song"))

	r = NewNameRegistry()
	assert.Equal(t, "Song (2)", r.Reserve("/a", "Song (2)"))
	assert.Equal(t, "Song", r.Reserve("/a", "Song"))
	assert.Equal(t, "Song (3)", r.Reserve("/a", "song"), "taken suffixes are skipped")
}

func TestNameRegistry_Concurrent(t *testing.T) {
	r := NewNameRegistry()
	const n = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := r.Reserve("/album", "Track")
			mu.Lock()
			seen[name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
