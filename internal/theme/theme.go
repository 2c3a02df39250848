// Package theme holds the console's light/dark mode. A Context is created
// once and passed to whatever renders; Toggle and Set are the only writers.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Palette is the set of colours a page draws with.
type Palette struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primary_light"`
	TextDark     string `json:"text_dark"`
	TextLight    string `json:"text_light"`
	Background   string `json:"background"`
	White        string `json:"white"`
	Success      string `json:"success"`
	Error        string `json:"error"`
	Header       string `json:"header"`
	AlternateRow string `json:"alternate_row"`
}

var (
	lightPalette = Palette{
		Primary:      "#043641",
		PrimaryLight: "#3B82F6",
		TextDark:     "#1F2937",
		TextLight:    "#6B7280",
		Background:   "#F9FAFB",
		White:        "#FFFFFF",
		Success:      "#16A34A",
		Error:        "#DC2626",
		Header:       "#007280",
		AlternateRow: "#007280",
	}
	// Dark swaps surface and text colours; accents stay recognisable.
	darkPalette = Palette{
		Primary:      "#5EC4D4",
		PrimaryLight: "#60A5FA",
		TextDark:     "#F3F4F6",
		TextLight:    "#9CA3AF",
		Background:   "#111827",
		White:        "#1F2937",
		Success:      "#22C55E",
		Error:        "#F87171",
		Header:       "#0B3B44",
		AlternateRow: "#374151",
	}
)

// PaletteFor returns the palette of a mode; unknown modes get the light one.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}

// Reader is what presentation code gets: it can look, not change.
type Reader interface {
	Mode() Mode
	Palette() Palette
}

// Context is safe for concurrent readers and a single writer.
type Context struct {
	mu   sync.RWMutex
	mode Mode
}

func New(m Mode) *Context {
	if m != Dark {
		m = Light
	}
	return &Context{mode: m}
}

func (c *Context) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

func (c *Context) Palette() Palette {
	return PaletteFor(c.Mode())
}

// Toggle flips the mode and returns the new one.
func (c *Context) Toggle() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == Light {
		c.mode = Dark
	} else {
		c.mode = Light
	}
	return c.mode
}

func (c *Context) Set(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}
