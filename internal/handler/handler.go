package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/database"
	"github.com/startickets/webtier/internal/email"
	"github.com/startickets/webtier/internal/logger"
)

// Handler holds all HTTP handlers
type Handler struct {
	rdb        *database.Redis
	log        *logger.Logger
	cfg        *config.Config
	dispatcher *email.Dispatcher
}

// New creates a new Handler instance
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config, dispatcher *email.Dispatcher) *Handler {
	return &Handler{
		rdb:        rdb,
		log:        log,
		cfg:        cfg,
		dispatcher: dispatcher,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
