// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sanitize

import (
	"strings"
	"testing"
)

func TestTextStripsMarkup(t *testing.T) {
	got := Text("  <script>alert(1)</script>Maria <b>Silva</b>  ")
	if strings.Contains(got, "<") {
		t.Errorf("markup left in output: %q", got)
	}
	if !strings.Contains(got, "Maria") || !strings.Contains(got, "Silva") {
		t.Errorf("text content lost: %q", got)
	}
	if got != strings.TrimSpace(got) {
		t.Errorf("output not trimmed: %q", got)
	}
}

func TestHTMLKeepsFormattingDropsScripts(t *testing.T) {
	got := HTML(`<p>Olá <strong>mundo</strong></p><script>alert(1)</script>`)
	if !strings.Contains(got, "<strong>mundo</strong>") {
		t.Errorf("formatting lost: %q", got)
	}
	if strings.Contains(got, "script") {
		t.Errorf("script left in output: %q", got)
	}
}

func TestHTMLDropsEventHandlers(t *testing.T) {
	got := HTML(`<a href="https://example.com" onclick="steal()">link</a>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler left in output: %q", got)
	}
	if !strings.Contains(got, "link") {
		t.Errorf("link text lost: %q", got)
	}
}
