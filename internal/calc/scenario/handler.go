package scenario

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Config(name))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Names())
}
