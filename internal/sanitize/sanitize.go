// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanitize wraps the bluemonday HTML sanitization policies used
// across the application: a strict policy for text arriving from public
// forms and a UGC policy for rendered blog HTML served to browsers.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Text strips all HTML from untrusted plain-text input (names, messages,
// testimonials) and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// HTML filters rendered blog HTML down to the user-generated-content
// allowlist (formatting, links, images) before it is served.
func HTML(s string) string {
	return ugc.Sanitize(s)
}
