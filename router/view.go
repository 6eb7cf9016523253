// Package router interprets the site's location fragment: which of the three
// top-level views to render and what scroll side effect the navigation needs.
// It is pure decision logic so the serving layer and tests can drive it with
// any notification mechanism.
package router

import (
	"strings"
	"time"
)

// View is a top-level page of the site.
type View string

const (
	ViewHome     View = "home"
	ViewBooking  View = "booking"
	ViewInternal View = "internal"
)

// Fragments recognized as routes. Anything else starting with "#/" falls back
// to home; fragments without the "#/" prefix are in-page anchors.
const (
	FragmentHome     = "#/"
	FragmentBooking  = "#/booking"
	FragmentInternal = "#/internal"
)

// AnchorSettleDelay is how long to wait before scrolling to an in-page anchor,
// so a route-triggered re-render can finish first.
const AnchorSettleDelay = 100 * time.Millisecond

// ScrollAction is the scroll side effect of a navigation.
type ScrollAction string

const (
	ScrollNone     ScrollAction = "none"
	ScrollTop      ScrollAction = "top"
	ScrollToAnchor ScrollAction = "anchor"
)

// Navigation is the result of resolving a fragment.
type Navigation struct {
	View   View          `json:"view"`
	Anchor string        `json:"anchor,omitempty"`
	Scroll ScrollAction  `json:"scroll"`
	Delay  time.Duration `json:"-"`
}

// Resolve maps a location fragment to a navigation decision. Empty, bare "#"
// and malformed fragments normalize to home. An unrecognized "#/..." route is
// rendered as home with the scroll position left alone; only the exact "#/"
// route scrolls to the top. A plain "#section" fragment keeps the
// home view and asks for a smooth scroll to that section after a short settle
// delay.
func Resolve(fragment string) Navigation {
	if fragment == "" || fragment == "#" {
		return Navigation{View: ViewHome, Scroll: ScrollTop}
	}

	if !strings.HasPrefix(fragment, "#/") {
		anchor := strings.TrimPrefix(fragment, "#")
		return Navigation{
			View:   ViewHome,
			Anchor: anchor,
			Scroll: ScrollToAnchor,
			Delay:  AnchorSettleDelay,
		}
	}

	switch fragment {
	case FragmentBooking:
		return Navigation{View: ViewBooking, Scroll: ScrollNone}
	case FragmentInternal:
		return Navigation{View: ViewInternal, Scroll: ScrollNone}
	default:
		// Unknown route renders home without touching scroll, not an error
		return Navigation{View: ViewHome, Scroll: ScrollNone}
	}
}
