package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"goblog/internal/service"
	"goblog/internal/session"
	"goblog/internal/view"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	ContactService service.ContactService
	Sessions       session.Service
	Renderer       *view.Renderer
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, sessions session.Service, renderer *view.Renderer) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		CommentService: services.Comment,
		ContactService: services.Contact,
		Sessions:       sessions,
		Renderer:       renderer,
		Validate:       validator.New(),
	}
}

// render fills in the request-scoped page data (current user, pending
// flash) before handing off to the renderer.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data *view.Data) {
	if data == nil {
		data = &view.Data{}
	}
	data.User = session.UserFrom(r.Context())
	if data.Flash == "" {
		data.Flash = view.PopFlash(w, r)
	}
	h.Renderer.Render(w, status, page, data)
}
