package main

import (
	"log"

	"github.com/milk9111/skyhop/ecs/component"
	"golang.design/x/clipboard"
)

// reportClipboard copies run summaries to the system clipboard. Init fails on
// headless machines, in which case copying is disabled.
type reportClipboard struct {
	ok  bool
	has bool
}

func newReportClipboard() *reportClipboard {
	c := &reportClipboard{}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return c
	}
	c.ok = true
	return c
}

func (c *reportClipboard) Available() bool { return c != nil && c.ok }

// Copy writes the report in its one-line form.
func (c *reportClipboard) Copy(r component.RunReport) {
	if !c.Available() {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(r.String()))
	c.has = true
}

// Copied reports whether the last copy is still the summary on screen.
func (c *reportClipboard) Copied() bool {
	return c.Available() && c.has
}

// Forget clears the copied marker, called when a new run starts.
func (c *reportClipboard) Forget() {
	if c != nil {
		c.has = false
	}
}
