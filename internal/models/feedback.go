// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DefaultStars is the rating used when a submission omits it.
const DefaultStars = 5

// Feedback is a customer testimonial submitted through the public form.
// It stays hidden from the site until an administrator approves it;
// approval is one-way.
type Feedback struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"nome_cliente"`
	Text         string    `json:"feedback"`
	Stars        int       `json:"estrelas"`
	CreatedAt    time.Time `json:"data"`
	Approved     bool      `json:"aprovado"`
}
