// Package compliance owns the caregiver adherence calendar.
package compliance

import "github.com/colonyops/pillbox/internal/dose"

// Controller manages the per-day adherence calendar. Loaded once per
// mount and replaced wholesale; there are no mutation operations.
type Controller struct {
	days    []dose.ComplianceDay
	loaded  bool
	pending bool
	failure string
}

// NewController creates a new compliance controller.
func NewController() *Controller {
	return &Controller{}
}

// BeginLoad records that a calendar fetch was issued.
func (c *Controller) BeginLoad() {
	c.pending = true
}

// ApplyLoad applies a completed fetch. Failure leaves the calendar empty
// and records the failure for surfacing.
func (c *Controller) ApplyLoad(days []dose.ComplianceDay, err error) {
	c.pending = false
	if err != nil {
		c.failure = err.Error()
		return
	}
	c.days = days
	c.loaded = true
	c.failure = ""
}

// Days returns the calendar from the most recently completed load.
func (c *Controller) Days() []dose.ComplianceDay {
	return c.days
}

// Loaded reports whether a load has completed successfully.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Loading reports whether a load is outstanding.
func (c *Controller) Loading() bool {
	return c.pending
}

// Failure returns the last load failure, or empty after success.
func (c *Controller) Failure() string {
	return c.failure
}
