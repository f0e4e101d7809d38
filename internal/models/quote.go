// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// QuoteStatus tracks whether a quote request has been answered.
// The only transition is novo → respondido; there is no way back.
type QuoteStatus string

const (
	QuoteStatusNew      QuoteStatus = "novo"
	QuoteStatusAnswered QuoteStatus = "respondido"
)

// QuoteRequest is a budget request ("pedido de orçamento") submitted
// through the public contact form. JSON tags follow the wire format the
// front-end expects.
type QuoteRequest struct {
	ID        int64       `json:"id"`
	Protocol  string      `json:"protocolo"` // Reference echoed to the customer at intake
	Name      string      `json:"nome"`
	Email     string      `json:"email"`
	Phone     *string     `json:"telefone,omitempty"`
	SiteType  *string     `json:"tipo_site,omitempty"`
	Message   *string     `json:"mensagem,omitempty"`
	CreatedAt time.Time   `json:"data"`
	Status    QuoteStatus `json:"status"`
}

// Answered returns true once the request has been marked as handled.
func (q *QuoteRequest) Answered() bool {
	return q.Status == QuoteStatusAnswered
}
