package handlers

import (
	"errors"
	"net/http"

	"goblog/internal/mailer"
	"goblog/internal/service"
	"goblog/internal/view"
)

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.html", nil)
}

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "contact.html", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg := service.ContactMessage{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	formValues := map[string]string{
		"name":    msg.Name,
		"email":   msg.Email,
		"phone":   msg.Phone,
		"message": msg.Message,
	}

	if err := h.Validate.Struct(msg); err != nil {
		h.render(w, r, http.StatusOK, "contact.html", &view.Data{
			Error: "All fields are required and the email must be valid.",
			Form:  formValues,
		})
		return
	}

	if err := h.ContactService.Send(r.Context(), msg); err != nil {
		if errors.Is(err, mailer.ErrDelivery) {
			// tell the visitor instead of claiming success
			h.render(w, r, http.StatusOK, "contact.html", &view.Data{
				Error: "Sorry, your message could not be sent right now. Please try again later.",
				Form:  formValues,
			})
			return
		}
		serverError(w, err)
		return
	}

	h.render(w, r, http.StatusOK, "contact.html", &view.Data{MsgSent: true})
}
