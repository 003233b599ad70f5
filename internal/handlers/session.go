package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/fov"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/engine"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionHandler exposes game sessions over HTTP.
// Routes:
// POST /v1/sessions               - Create a new session
// GET /v1/sessions/{id}           - Read a session by ID
// DELETE /v1/sessions/{id}        - Delete a session by ID
// POST /v1/sessions/{id}/actions  - Apply one player action
type SessionHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewSessionHandler(logger *slog.Logger, storage storage.Storage) *SessionHandler {
	return &SessionHandler{
		storage: storage,
		logger:  logger,
	}
}

// CreateSessionRequest defines the request body for creating a session.
// A zero seed means "pick one".
type CreateSessionRequest struct {
	Seed uint64 `json:"seed,omitempty"`
}

// TargetRequest is a map cell chosen by the client for a targeted
// item (confusion or fireball scrolls).
type TargetRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActionRequest is one player command. In addition to the engine's
// action set it accepts "levelup", which resolves a pending level-up
// with the given choice before any further turn can be taken.
type ActionRequest struct {
	Action string         `json:"action"`
	DX     int            `json:"dx,omitempty"`
	DY     int            `json:"dy,omitempty"`
	Index  int            `json:"index,omitempty"`
	Target *TargetRequest `json:"target,omitempty"`
	Choice string         `json:"choice,omitempty"`
	Seed   uint64         `json:"seed,omitempty"`
}

// SessionResponse is the full session snapshot. Clients compute field
// of view themselves; the map carries the explored flags.
type SessionResponse struct {
	ID              uuid.UUID        `json:"id"`
	Entities        interface{}      `json:"entities"`
	State           *state.GameState `json:"state"`
	LevelUpRequired bool             `json:"level_up_required"`
}

// ActionResponse reports the outcome of one action on top of the
// resulting snapshot. Messages holds only the log lines the action
// produced.
type ActionResponse struct {
	Result   engine.ActionResult `json:"result"`
	Messages state.Messages      `json:"messages"`
	SessionResponse
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleCreate(w, r)
		return
	}

	idStr, rest, _ := strings.Cut(path, "/")
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", idStr, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		h.handleRead(w, r, sessionID)
	case rest == "" && r.Method == http.MethodDelete:
		h.handleDelete(w, r, sessionID)
	case rest == "actions" && r.Method == http.MethodPost:
		h.handleAction(w, r, sessionID)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eng, err := engine.NewGame(seed)
	if err != nil {
		h.logger.Error("Failed to create session", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	save := &storage.SavedGame{
		Entities: eng.Entities,
		State:    eng.GS,
	}
	if err := h.storage.SaveGame(r.Context(), eng.GS.ID, save); err != nil {
		h.logger.Error("Failed to save session", "uuid", eng.GS.ID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	w.WriteHeader(http.StatusCreated)
	h.writeJSON(w, SessionResponse{
		ID:              eng.GS.ID,
		Entities:        eng.Entities,
		State:           eng.GS,
		LevelUpRequired: eng.NeedsLevelUp(),
	})
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	save, err := h.storage.LoadGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		h.logger.Error("Failed to load session", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	eng := engine.Resume(save.Entities, save.State, 0)
	h.writeJSON(w, SessionResponse{
		ID:              id,
		Entities:        save.Entities,
		State:           save.State,
		LevelUpRequired: eng.NeedsLevelUp(),
	})
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteGame(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) handleAction(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	save, err := h.storage.LoadGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		h.logger.Error("Failed to load session", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	eng := engine.Resume(save.Entities, save.State, seed)

	// The server recomputes visibility around the player so that
	// monster turns and targeted items see the same world the client
	// rendered.
	oracle := fov.New(eng.GS.Map.Width, eng.GS.Map.Height)
	px, py := eng.Player().Pos()
	oracle.Recompute(eng.GS.Map, px, py, fov.TorchRadius)
	eng.FOV = oracle

	if req.Target != nil {
		eng.UI = combat.SingleShot(combat.InputEvent{
			Kind: combat.EventLeftClick,
			X:    req.Target.X,
			Y:    req.Target.Y,
		})
	} else {
		eng.UI = combat.SingleShot(combat.InputEvent{Kind: combat.EventCancel})
	}

	logMark := len(eng.GS.Log)

	var result engine.ActionResult
	if req.Action == "levelup" {
		if err := eng.ApplyLevelUp(engine.Improvement(req.Choice)); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		result = engine.NoTurnTaken
	} else {
		if eng.NeedsLevelUp() {
			h.writeError(w, http.StatusConflict, "Level-up choice required before further actions")
			return
		}
		result = eng.Step(engine.Action{
			Kind:  engine.ActionKind(req.Action),
			DX:    req.DX,
			DY:    req.DY,
			Index: req.Index,
		})
	}

	save.Entities = eng.Entities
	save.State = eng.GS
	if err := h.storage.SaveGame(r.Context(), id, save); err != nil {
		h.logger.Error("Failed to save session", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	h.writeJSON(w, ActionResponse{
		Result:   result,
		Messages: eng.GS.Log[logMark:],
		SessionResponse: SessionResponse{
			ID:              id,
			Entities:        eng.Entities,
			State:           eng.GS,
			LevelUpRequired: eng.NeedsLevelUp(),
		},
	})
}

func (h *SessionHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *SessionHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
