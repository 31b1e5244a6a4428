package handlers

import (
	"errors"
	"net/http"

	"goblog/internal/repository"
	"goblog/internal/service"
	"goblog/internal/view"
)

type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "register.html", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := RegisterForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.Validate.Struct(form); err != nil {
		h.render(w, r, http.StatusOK, "register.html", &view.Data{
			Error: "Please provide a name, a valid email and a password of at least 6 characters.",
			Form:  map[string]string{"name": form.Name, "email": form.Email},
		})
		return
	}

	user, err := h.AuthService.Register(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			view.SetFlash(w, "You've already signed up with that email, log in instead!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	// auto-login right after registration
	if err := h.Sessions.Issue(r.Context(), w, user); err != nil {
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "login.html", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.Validate.Struct(form); err != nil {
		h.render(w, r, http.StatusOK, "login.html", &view.Data{
			Error: "Please provide a valid email and a password.",
			Form:  map[string]string{"email": form.Email},
		})
		return
	}

	user, err := h.AuthService.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		// the original site told the visitor which of the two failed;
		// keep the distinction
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			view.SetFlash(w, "That email does not exist, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, service.ErrWrongPassword):
			view.SetFlash(w, "Password incorrect, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			serverError(w, err)
		}
		return
	}

	if err := h.Sessions.Issue(r.Context(), w, user); err != nil {
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r.Context(), w, r); err != nil {
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
