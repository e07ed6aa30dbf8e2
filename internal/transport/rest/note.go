package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

// noteService defines the minimal interface needed by NoteHandler.
type noteService interface {
	Get(ctx context.Context, date, userID string) (*domain.Note, error)
	Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error)
	List(ctx context.Context, userID string) ([]domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

// NoteHandler serves the note REST endpoints. The caller is identified by
// the user id that middleware.UserID put in the context.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type saveNoteRequest struct {
	Content *string `json:"content"`
}

type noteResponse struct {
	ID          int64     `json:"id"`
	InsightDate string    `json:"insight_date"`
	UserID      string    `json:"user_id"`
	Content     *string   `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type noteListResponse struct {
	Count int            `json:"count"`
	Notes []noteResponse `json:"notes"`
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	notes, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err, "Note not found")
		return
	}

	resp := noteListResponse{Count: len(notes), Notes: make([]noteResponse, len(notes))}
	for i := range notes {
		resp.Notes[i] = toNoteResponse(&notes[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/notes/{date}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	n, err := h.svc.Get(r.Context(), r.PathValue("date"), userID)
	if err != nil {
		handleError(h.log, w, r, err, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Put handles PUT /api/notes/{date}. A null or missing content clears the
// note body but keeps the row.
func (h *NoteHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req saveNoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.Save(r.Context(), domain.NoteInput{
		InsightDate: r.PathValue("date"),
		UserID:      userID,
		Content:     req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err, "Note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:          n.ID,
		InsightDate: n.InsightDate,
		UserID:      n.UserID,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
