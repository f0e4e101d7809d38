// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Project is a portfolio entry shown on the public site. Projects are
// created and deleted by the administrator; there is no in-place edit.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description *string   `json:"descricao,omitempty"`
	ImageURL    *string   `json:"imagem_url,omitempty"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"data_criacao"`
}
