// Package today owns the due-medication list for the elder home view.
package today

import "github.com/colonyops/pillbox/internal/dose"

// Controller manages the due-items collection and cursor. It contains
// pure data logic with no Bubble Tea dependencies; the root model issues
// the network calls and feeds completions back in.
//
// Completions are applied in completion order, not issue order: every
// successful ApplyLoad replaces the collection wholesale, so whichever
// fetch finishes last wins. That race is a documented property of the
// view, not an accident.
type Controller struct {
	items   []dose.DueItem
	cursor  int
	loaded  bool // at least one load has completed successfully
	pending int  // outstanding load count
	failure string
}

// NewController creates a new today controller.
func NewController() *Controller {
	return &Controller{}
}

// BeginLoad records that a fetch-due-today request was issued. The
// displayed collection is untouched until the replacement arrives.
func (c *Controller) BeginLoad() {
	c.pending++
}

// ApplyLoad applies a completed fetch. On success the collection is
// replaced wholesale (an empty result is valid and displayable); on
// failure the prior collection is retained and the failure recorded.
func (c *Controller) ApplyLoad(items []dose.DueItem, err error) {
	if c.pending > 0 {
		c.pending--
	}
	if err != nil {
		c.failure = err.Error()
		return
	}

	c.items = items
	c.loaded = true
	c.failure = ""
	if c.cursor >= len(c.items) {
		c.cursor = max(len(c.items)-1, 0)
	}
}

// Items returns the most recently completed load's collection.
func (c *Controller) Items() []dose.DueItem {
	return c.items
}

// Selected returns the item under the cursor, or nil if the list is empty.
func (c *Controller) Selected() *dose.DueItem {
	if len(c.items) == 0 || c.cursor >= len(c.items) {
		return nil
	}
	return &c.items[c.cursor]
}

// MoveUp moves the cursor up one position.
func (c *Controller) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the cursor down one position.
func (c *Controller) MoveDown() {
	if c.cursor < len(c.items)-1 {
		c.cursor++
	}
}

// Cursor returns the current cursor position.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Loaded reports whether any load has completed successfully. It
// distinguishes "nothing due" from "nothing fetched yet".
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Loading reports whether a load is outstanding.
func (c *Controller) Loading() bool {
	return c.pending > 0
}

// Failure returns the last load failure, or empty after a successful load.
func (c *Controller) Failure() string {
	return c.failure
}
