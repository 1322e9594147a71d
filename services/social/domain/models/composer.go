package models

import "strings"

// Composer models the comment input field contract: the draft is cleared the
// moment a submission is issued (before the gateway round trip resolves) and
// restored only when the submission fails, so the user never loses a draft
// to a network error. It is the state machine a client embeds next to the
// comment list.
type Composer struct {
	draft string
}

// SetDraft replaces the in-progress draft text.
func (c *Composer) SetDraft(text string) {
	c.draft = text
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	return c.draft
}

// Submit trims the draft and clears the field. Returns the trimmed text and
// whether it was non-empty; an empty draft is not submittable and the field
// is left untouched.
func (c *Composer) Submit() (string, bool) {
	trimmed := strings.TrimSpace(c.draft)
	if trimmed == "" {
		return "", false
	}
	c.draft = ""
	return trimmed, true
}

// Restore puts failed-submission text back into the field so the draft
// survives a gateway rejection.
func (c *Composer) Restore(text string) {
	c.draft = text
}
