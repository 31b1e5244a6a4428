package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"goblog/internal/repository"
	"goblog/internal/service"
	"goblog/internal/session"
	"goblog/internal/view"
)

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.List(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	h.render(w, r, http.StatusOK, "index.html", &view.Data{Posts: posts})
}

// ShowPost renders a post with its comment thread; a POST adds a comment
// from the logged-in visitor.
func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromRequest(r)
	if !ok {
		notFound(w)
		return
	}

	if r.Method == http.MethodPost {
		h.addComment(w, r, postID)
		return
	}

	post, err := h.PostService.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}
		serverError(w, err)
		return
	}

	comments, err := h.CommentService.ListByPost(r.Context(), postID)
	if err != nil {
		serverError(w, err)
		return
	}

	h.render(w, r, http.StatusOK, "post.html", &view.Data{Post: post, Comments: comments})
}

func (h *Handlers) addComment(w http.ResponseWriter, r *http.Request, postID int) {
	user := session.UserFrom(r.Context())
	if user == nil {
		view.SetFlash(w, "You need to log in or register to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	text := r.PostFormValue("comment_text")
	if text == "" {
		view.SetFlash(w, "Comment cannot be empty.")
		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
		return
	}

	if _, err := h.CommentService.Add(r.Context(), text, user, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}
		serverError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// NewPost and the other admin handlers are mounted behind AdminOnly, so
// the current user is always the admin here.
func (h *Handlers) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "make-post.html", nil)
		return
	}

	req, formValues, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.render(w, r, http.StatusOK, "make-post.html", &view.Data{
			Error: "All fields are required and the image URL must be a valid URL.",
			Form:  formValues,
		})
		return
	}

	user := session.UserFrom(r.Context())
	if _, err := h.PostService.Create(r.Context(), req, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			h.render(w, r, http.StatusOK, "make-post.html", &view.Data{
				Error: "A post with that title already exists, please choose another.",
				Form:  formValues,
			})
			return
		}
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromRequest(r)
	if !ok {
		notFound(w)
		return
	}

	if r.Method == http.MethodGet {
		post, err := h.PostService.Get(r.Context(), postID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(w)
				return
			}
			serverError(w, err)
			return
		}

		h.render(w, r, http.StatusOK, "make-post.html", &view.Data{
			IsEdit: true,
			Form: map[string]string{
				"title":    post.Title,
				"subtitle": post.Subtitle,
				"img_url":  post.ImgURL,
				"body":     post.Body,
			},
		})
		return
	}

	req, formValues, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.render(w, r, http.StatusOK, "make-post.html", &view.Data{
			IsEdit: true,
			Error:  "All fields are required and the image URL must be a valid URL.",
			Form:   formValues,
		})
		return
	}

	if err := h.PostService.Update(r.Context(), postID, req); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			notFound(w)
		case errors.Is(err, repository.ErrDuplicateTitle):
			h.render(w, r, http.StatusOK, "make-post.html", &view.Data{
				IsEdit: true,
				Error:  "A post with that title already exists, please choose another.",
				Form:   formValues,
			})
		default:
			serverError(w, err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// DeletePost deletes immediately on GET, matching the original site's
// behavior of no confirmation step.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromRequest(r)
	if !ok {
		notFound(w)
		return
	}

	if err := h.PostService.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) parsePostForm(w http.ResponseWriter, r *http.Request) (service.CreatePostRequest, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return service.CreatePostRequest{}, nil, false
	}

	req := service.CreatePostRequest{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
	}

	formValues := map[string]string{
		"title":    req.Title,
		"subtitle": req.Subtitle,
		"body":     req.Body,
		"img_url":  req.ImgURL,
	}

	return req, formValues, true
}

func postIDFromRequest(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
