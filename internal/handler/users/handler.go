package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akarin/userbook/internal/command"
	"github.com/akarin/userbook/internal/model/user"
	"github.com/akarin/userbook/internal/storage"
	"github.com/akarin/userbook/pkg/httpx"
)

// Handler exposes the registry operations over HTTP.
type Handler struct {
	dataFile string
	logger   *zap.Logger
	validate *validator.Validate
}

// New creates a users handler bound to the given data file.
func New(dataFile string, logger *zap.Logger) *Handler {
	return &Handler{
		dataFile: dataFile,
		logger:   logger,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the user routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.handleListUsers)
	r.Post("/users", h.handleAddUser)
	r.Post("/users/reset", h.handleReset)
	r.Get("/users/{id}", h.handleGetUser)
	r.Delete("/users/{id}", h.handleRemoveUser)
}

// entry is the wire form of one stored user. The nested user keeps the same
// compact field tags as the data file.
type entry struct {
	ID   int       `json:"id"`
	User user.User `json:"user"`
}

func (h *Handler) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	entries, err := command.List(h.dataFile)
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entry{ID: e.ID, User: e.User})
	}
	httpx.RespondJSON(w, http.StatusOK, out)
}

func (h *Handler) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var u user.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(u); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := command.Add(h.dataFile, u)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, entry{ID: id, User: u})
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	u, err := command.Get(h.dataFile, id)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, entry{ID: id, User: u})
}

func (h *Handler) handleRemoveUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	u, err := command.Remove(h.dataFile, id)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, entry{ID: id, User: u})
}

func (h *Handler) handleReset(w http.ResponseWriter, _ *http.Request) {
	cleared, err := command.Reset(h.dataFile)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}

// userID parses the {id} route parameter. Ids are non-negative integers;
// anything else is a client error, not a lookup miss.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		httpx.RespondError(w, http.StatusBadRequest, "id must be a non-negative integer")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, command.ErrUserNotFound):
		httpx.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrMalformed):
		h.logger.Error("data file is corrupt", zap.Error(err))
		httpx.RespondError(w, http.StatusInternalServerError, "data file is corrupt")
	default:
		h.logger.Error("registry operation failed", zap.Error(err))
		httpx.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
