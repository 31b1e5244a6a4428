package handlers

import (
	"log"
	"net/http"
)

func notFound(w http.ResponseWriter) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

func forbidden(w http.ResponseWriter) {
	http.Error(w, "Forbidden", http.StatusForbidden)
}

// serverError hides internals from the visitor; the detail goes to the log.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
