// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the site backend.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/cache"
	"vitrine/internal/render"
	"vitrine/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer  *render.Renderer
	quotes    *store.QuoteStore
	feedbacks *store.FeedbackStore
	projects  *store.ProjectStore
	posts     *store.PostStore
	apiCache  *cache.APICache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// apiCache may be nil when Valkey caching is disabled.
func NewAdmin(renderer *render.Renderer, quotes *store.QuoteStore, feedbacks *store.FeedbackStore, projects *store.ProjectStore, posts *store.PostStore, apiCache *cache.APICache) *Admin {
	return &Admin{
		renderer:  renderer,
		quotes:    quotes,
		feedbacks: feedbacks,
		projects:  projects,
		posts:     posts,
		apiCache:  apiCache,
	}
}

// Dashboard renders the admin dashboard with per-entity counts.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	quoteCount, _ := a.quotes.Count()
	feedbackCount, _ := a.feedbacks.Count()
	projectCount, _ := a.projects.Count()
	postCount, _ := a.posts.Count()

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"QuoteCount":    quoteCount,
			"FeedbackCount": feedbackCount,
			"ProjectCount":  projectCount,
			"PostCount":     postCount,
		},
	})
}

// --- Quote requests ---

// PedidosList renders the quote-request moderation page.
func (a *Admin) PedidosList(w http.ResponseWriter, r *http.Request) {
	quotes, err := a.quotes.List()
	if err != nil {
		slog.Error("list quote requests failed", "error", err)
	}

	a.renderer.Page(w, r, "pedidos_list", &render.PageData{
		Title:   "Pedidos",
		Section: "pedidos",
		Data:    map[string]any{"Quotes": quotes},
	})
}

// PedidoResponder marks a quote request as answered and returns to the
// listing. A missing id is a silent no-op.
func (a *Admin) PedidoResponder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := a.quotes.MarkAnswered(id); err != nil {
		slog.Error("mark quote request answered failed", "error", err, "id", id)
	}

	http.Redirect(w, r, "/admin/pedidos", http.StatusSeeOther)
}

// --- Feedback moderation ---

// FeedbacksList renders the feedback moderation page.
func (a *Admin) FeedbacksList(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := a.feedbacks.List()
	if err != nil {
		slog.Error("list feedbacks failed", "error", err)
	}

	a.renderer.Page(w, r, "feedbacks_list", &render.PageData{
		Title:   "Feedbacks",
		Section: "feedbacks",
		Data:    map[string]any{"Feedbacks": feedbacks},
	})
}

// FeedbackAprovar approves a feedback entry and returns to the listing.
// The public listing cache is invalidated so approval shows on the next read.
func (a *Admin) FeedbackAprovar(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := a.feedbacks.Approve(id); err != nil {
		slog.Error("approve feedback failed", "error", err, "id", id)
	} else {
		a.apiCache.Invalidate(r.Context(), cache.KeyApprovedFeedbacks)
	}

	http.Redirect(w, r, "/admin/feedbacks", http.StatusSeeOther)
}

// --- Portfolio projects ---

// ProjetosList renders the project management page.
func (a *Admin) ProjetosList(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}

	a.renderer.Page(w, r, "projetos_list", &render.PageData{
		Title:   "Projetos",
		Section: "projetos",
		Data:    map[string]any{"Projects": projects},
	})
}

// ProjetoNew renders the new project form.
func (a *Admin) ProjetoNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "projeto_form", &render.PageData{
		Title:   "Novo projeto",
		Section: "projetos",
	})
}

// ProjetoCreate handles the new project form submission.
func (a *Admin) ProjetoCreate(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("titulo"))
	description := strings.TrimSpace(r.FormValue("descricao"))
	imageURL := strings.TrimSpace(r.FormValue("imagem_url"))
	link := strings.TrimSpace(r.FormValue("link"))

	if msg := validateProject(title, description, imageURL, link); msg != "" {
		a.renderer.Page(w, r, "projeto_form", &render.PageData{
			Title:   "Novo projeto",
			Section: "projetos",
			Data:    map[string]any{"Error": msg},
		})
		return
	}

	if _, err := a.projects.Create(title, optional(description), optional(imageURL), optional(link)); err != nil {
		slog.Error("create project failed", "error", err)
		a.renderer.Page(w, r, "projeto_form", &render.PageData{
			Title:   "Novo projeto",
			Section: "projetos",
			Data:    map[string]any{"Error": "Não foi possível salvar o projeto."},
		})
		return
	}

	a.apiCache.Invalidate(r.Context(), cache.KeyProjects)
	http.Redirect(w, r, "/admin/projetos", http.StatusSeeOther)
}

// ProjetoDelete removes a project and returns to the listing. A missing id
// is a silent no-op.
func (a *Admin) ProjetoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := a.projects.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err, "id", id)
	} else {
		a.apiCache.Invalidate(r.Context(), cache.KeyProjects)
	}

	http.Redirect(w, r, "/admin/projetos", http.StatusSeeOther)
}

// --- Blog posts ---

// BlogList renders the blog management page.
func (a *Admin) BlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.List()
	if err != nil {
		slog.Error("list blog posts failed", "error", err)
	}

	a.renderer.Page(w, r, "blog_list", &render.PageData{
		Title:   "Blog",
		Section: "blog",
		Data:    map[string]any{"Posts": posts},
	})
}

// PostNew renders the new blog post form.
func (a *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:   "Novo post",
		Section: "blog",
	})
}

// PostCreate handles the new blog post form submission.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("titulo"))
	body := strings.TrimSpace(r.FormValue("conteudo"))
	author := strings.TrimSpace(r.FormValue("autor"))

	if msg := validatePost(title, body, author); msg != "" {
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "Novo post",
			Section: "blog",
			Data:    map[string]any{"Error": msg},
		})
		return
	}

	if _, err := a.posts.Create(title, optional(body), author); err != nil {
		slog.Error("create blog post failed", "error", err)
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "Novo post",
			Section: "blog",
			Data:    map[string]any{"Error": "Não foi possível publicar o post."},
		})
		return
	}

	a.apiCache.Invalidate(r.Context(), cache.KeyBlogPosts)
	http.Redirect(w, r, "/admin/blog", http.StatusSeeOther)
}

// PostDelete removes a blog post and returns to the listing. A missing id
// is a silent no-op.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := a.posts.Delete(id); err != nil {
		slog.Error("delete blog post failed", "error", err, "id", id)
	} else {
		a.apiCache.Invalidate(r.Context(), cache.KeyBlogPosts)
	}

	http.Redirect(w, r, "/admin/blog", http.StatusSeeOther)
}

// idParam parses the {id} route parameter. On a malformed value it writes a
// 404 and reports false; nothing in the admin UI produces one.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// optional converts an empty form value to a NULL-able field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
