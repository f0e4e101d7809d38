// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for form fields.
const (
	maxNameLen     = 200
	maxEmailLen    = 320
	maxPhoneLen    = 50
	maxSiteTypeLen = 100
	maxMessageLen  = 5_000
	maxFeedbackLen = 2_000
	maxTitleLen    = 300
	maxDescLen     = 2_000
	maxURLLen      = 500
	maxBodyLen     = 100_000
	maxAuthorLen   = 100
)

// validateQuote checks the public quote-request form and returns the first
// error found.
func validateQuote(name, email string) string {
	if strings.TrimSpace(name) == "" {
		return "Nome é obrigatório."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Nome é muito longo (máximo 200 caracteres)."
	}
	if strings.TrimSpace(email) == "" {
		return "E-mail é obrigatório."
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "E-mail é muito longo (máximo 320 caracteres)."
	}
	return ""
}

// validateFeedback checks the public feedback form and returns the first
// error found.
func validateFeedback(name, text string) string {
	if strings.TrimSpace(name) == "" {
		return "Nome é obrigatório."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Nome é muito longo (máximo 200 caracteres)."
	}
	if strings.TrimSpace(text) == "" {
		return "Feedback é obrigatório."
	}
	if utf8.RuneCountInString(text) > maxFeedbackLen {
		return "Feedback é muito longo (máximo 2.000 caracteres)."
	}
	return ""
}

// validateProject checks the admin project form and returns the first
// error found.
func validateProject(title, description, imageURL, link string) string {
	if strings.TrimSpace(title) == "" {
		return "Título é obrigatório."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Título é muito longo (máximo 300 caracteres)."
	}
	if utf8.RuneCountInString(description) > maxDescLen {
		return "Descrição é muito longa (máximo 2.000 caracteres)."
	}
	if utf8.RuneCountInString(imageURL) > maxURLLen {
		return "URL da imagem é muito longa (máximo 500 caracteres)."
	}
	if utf8.RuneCountInString(link) > maxURLLen {
		return "Link é muito longo (máximo 500 caracteres)."
	}
	return ""
}

// validatePost checks the admin blog-post form and returns the first
// error found.
func validatePost(title, body, author string) string {
	if strings.TrimSpace(title) == "" {
		return "Título é obrigatório."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Título é muito longo (máximo 300 caracteres)."
	}
	if strings.TrimSpace(body) == "" {
		return "Conteúdo é obrigatório."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Conteúdo é muito longo (máximo 100.000 caracteres)."
	}
	if utf8.RuneCountInString(author) > maxAuthorLen {
		return "Autor é muito longo (máximo 100 caracteres)."
	}
	return ""
}
