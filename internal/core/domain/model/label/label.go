// Package label models a purchased shipping label.
package label

import (
	"strings"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

// ErrLabelIsNotConstructed is returned when a Label bypassed NewLabel.
var ErrLabelIsNotConstructed = errs.NewValueIsRequiredError("label must be created via NewLabel")

// Label is the provider's proof of purchase: where to download the printable label
// and, when the provider created a tracker, the public tracking page.
type Label struct { //nolint:recvcheck //using for validation
	url        string
	trackerURL string

	guard guard.ConstructorGuard
}

// NewLabel requires the label URL; the tracker URL is optional.
func NewLabel(url, trackerURL string) (Label, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Label{}, errs.NewValueIsRequiredError("label url")
	}

	return Label{
		url:        url,
		trackerURL: strings.TrimSpace(trackerURL),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the label was created through NewLabel.
func (l Label) Validate() error {
	return l.guard.Validate(ErrLabelIsNotConstructed)
}

// URL returns the printable label location.
func (l Label) URL() string {
	return l.url
}

// TrackerURL returns the public tracking page, or "" when none was created.
func (l Label) TrackerURL() string {
	return l.trackerURL
}

// HasTracker reports whether the provider returned a tracking page.
func (l Label) HasTracker() bool {
	return l.trackerURL != ""
}
