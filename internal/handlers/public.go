// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vitrine/internal/cache"
	"vitrine/internal/markdown"
	"vitrine/internal/models"
	"vitrine/internal/render"
	"vitrine/internal/sanitize"
	"vitrine/internal/store"
)

// Public groups handlers for the public site: the landing page, the two
// form intake endpoints, and the read-only JSON listings. Listing payloads
// are served from the Valkey cache when warm and rebuilt on miss.
type Public struct {
	renderer  *render.Renderer
	quotes    *store.QuoteStore
	feedbacks *store.FeedbackStore
	projects  *store.ProjectStore
	posts     *store.PostStore
	apiCache  *cache.APICache
}

// NewPublic creates a new Public handler group. apiCache may be nil when
// Valkey caching is disabled.
func NewPublic(renderer *render.Renderer, quotes *store.QuoteStore, feedbacks *store.FeedbackStore, projects *store.ProjectStore, posts *store.PostStore, apiCache *cache.APICache) *Public {
	return &Public{
		renderer:  renderer,
		quotes:    quotes,
		feedbacks: feedbacks,
		projects:  projects,
		posts:     posts,
		apiCache:  apiCache,
	}
}

// Landing renders the public landing page.
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, r, "landing", &render.PageData{
		Title: "Vitrine",
	})
}

// Health reports liveness for load balancers and uptime monitors.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// SubmitQuote accepts a quote request from the public contact form.
// Replies with the protocol reference the customer can quote back.
func (p *Public) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	name := sanitize.Text(r.FormValue("nome"))
	email := sanitize.Text(r.FormValue("email"))
	phone := clip(sanitize.Text(r.FormValue("telefone")), maxPhoneLen)
	siteType := clip(sanitize.Text(r.FormValue("tipo_site")), maxSiteTypeLen)
	message := clip(sanitize.Text(r.FormValue("mensagem")), maxMessageLen)

	if msg := validateQuote(name, email); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	rec, err := p.quotes.Create(store.QuoteRequestInput{
		Name:     name,
		Email:    email,
		Phone:    optional(phone),
		SiteType: optional(siteType),
		Message:  optional(message),
	})
	if err != nil {
		slog.Error("create quote request failed", "error", err)
		http.Error(w, "Não foi possível registrar o pedido.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Pedido recebido com sucesso! Protocolo: %s", rec.Protocol)
}

// SubmitFeedback accepts a customer testimonial from the public form.
// The entry stays hidden until an administrator approves it.
func (p *Public) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	name := sanitize.Text(r.FormValue("nome"))
	text := clip(sanitize.Text(r.FormValue("feedback")), maxFeedbackLen)

	if msg := validateFeedback(name, text); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// Missing or unparsable star ratings fall back to the default.
	stars := models.DefaultStars
	if v, err := strconv.Atoi(r.FormValue("estrelas")); err == nil && v >= 1 && v <= 5 {
		stars = v
	}

	if _, err := p.feedbacks.Create(name, text, stars); err != nil {
		slog.Error("create feedback failed", "error", err)
		http.Error(w, "Não foi possível registrar o feedback.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Feedback recebido com sucesso! Obrigado.")
}

// Wire types for the public JSON listings. Only the fields the front-end
// consumes are serialized.
type apiFeedback struct {
	CustomerName string `json:"nome_cliente"`
	Text         string `json:"feedback"`
	Stars        int    `json:"estrelas"`
}

type apiProject struct {
	Title       string  `json:"titulo"`
	Description *string `json:"descricao"`
	ImageURL    *string `json:"imagem_url"`
	Link        *string `json:"link"`
}

type apiPost struct {
	Title       string    `json:"titulo"`
	Body        *string   `json:"conteudo"`
	BodyHTML    string    `json:"conteudo_html"`
	Author      string    `json:"autor"`
	PublishedAt time.Time `json:"data_publicacao"`
}

// ListApprovedFeedback serves the approved testimonials, newest first.
func (p *Public) ListApprovedFeedback(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.KeyApprovedFeedbacks, func() (any, error) {
		items, err := p.feedbacks.ListApproved()
		if err != nil {
			return nil, err
		}
		out := make([]apiFeedback, 0, len(items))
		for _, f := range items {
			out = append(out, apiFeedback{
				CustomerName: f.CustomerName,
				Text:         f.Text,
				Stars:        f.Stars,
			})
		}
		return map[string]any{"feedbacks": out}, nil
	})
}

// ListProjects serves the portfolio, newest first.
func (p *Public) ListProjects(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.KeyProjects, func() (any, error) {
		items, err := p.projects.List()
		if err != nil {
			return nil, err
		}
		out := make([]apiProject, 0, len(items))
		for _, pr := range items {
			out = append(out, apiProject{
				Title:       pr.Title,
				Description: pr.Description,
				ImageURL:    pr.ImageURL,
				Link:        pr.Link,
			})
		}
		return map[string]any{"projetos": out}, nil
	})
}

// ListBlogPosts serves published posts, newest first, with the Markdown
// source rendered to sanitized HTML.
func (p *Public) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.KeyBlogPosts, func() (any, error) {
		items, err := p.posts.List()
		if err != nil {
			return nil, err
		}
		out := make([]apiPost, 0, len(items))
		for _, b := range items {
			var bodyHTML string
			if b.Body != nil {
				html, err := markdown.ToHTML(*b.Body)
				if err != nil {
					slog.Warn("markdown render failed", "error", err, "post_id", b.ID)
				} else {
					bodyHTML = sanitize.HTML(html)
				}
			}
			out = append(out, apiPost{
				Title:       b.Title,
				Body:        b.Body,
				BodyHTML:    bodyHTML,
				Author:      b.Author,
				PublishedAt: b.PublishedAt,
			})
		}
		return map[string]any{"posts": out}, nil
	})
}

// serveCached writes a cached JSON payload when warm, otherwise builds it,
// stores it, and writes it.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string, build func() (any, error)) {
	ctx := r.Context()

	if payload, ok := p.apiCache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	body, err := build()
	if err != nil {
		slog.Error("build api payload failed", "error", err, "key", key)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(body)
	if err != nil {
		slog.Error("marshal api payload failed", "error", err, "key", key)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.apiCache.Set(ctx, key, payload)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// clip truncates a value to the field's maximum length in runes.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
