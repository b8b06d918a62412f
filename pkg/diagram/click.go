package diagram

import (
	"fmt"
	"strings"
)

// ClickEvent is an interaction bound to a node, rendered as the tail of
// a click statement. The set of implementations is closed; [Navigation]
// is the link-following event.
type ClickEvent interface {
	fmt.Stringer
	clickEvent()
}

// Navigation is a click event that follows a URL. The zero value is not
// useful; construct values with [Navigate] and refine them through the
// chainable setters, which return updated copies.
type Navigation struct {
	url     string
	newTab  bool
	anchor  bool
	tooltip string
}

// Navigate returns a navigation event pointing at url.
func Navigate(url string) Navigation {
	return Navigation{url: url}
}

// NewTab controls whether the link opens in a new tab, rendered as the
// "_blank" target.
func (n Navigation) NewTab(enabled bool) Navigation {
	n.newTab = enabled
	return n
}

// Anchor controls whether the link is rendered as an anchor through the
// "href" keyword instead of a JavaScript callback binding.
func (n Navigation) Anchor(enabled bool) Navigation {
	n.anchor = enabled
	return n
}

// Tooltip sets the hover text of the link. An empty string removes the
// tooltip.
func (n Navigation) Tooltip(tooltip string) Navigation {
	n.tooltip = tooltip
	return n
}

// String returns the suffix of a click statement: the optional href
// keyword, the quoted URL, the optional quoted tooltip and the optional
// "_blank" target. Without the href keyword the suffix starts with the
// separating space.
func (n Navigation) String() string {
	var sb strings.Builder
	if n.anchor {
		sb.WriteString("href")
	}
	sb.WriteString(` "` + n.url + `"`)
	if n.tooltip != "" {
		sb.WriteString(` "` + n.tooltip + `"`)
	}
	if n.newTab {
		sb.WriteString(" _blank")
	}
	return sb.String()
}

func (Navigation) clickEvent() {}
