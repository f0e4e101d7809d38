// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DefaultAuthor is used when a blog post is created without an author.
const DefaultAuthor = "Rafael"

// BlogPost is a published article. Body is Markdown source; the public
// API additionally serves the rendered HTML.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Body        *string   `json:"conteudo,omitempty"`
	Author      string    `json:"autor"`
	PublishedAt time.Time `json:"data_publicacao"`
}
