package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/export"
	"github.com/mialiew/futaritabi/internal/session"
)

// ExportHandler renders the offline HTML artifact of the current trip.
type ExportHandler struct {
	session *session.Session
}

// NewExportHandler creates a new export handler.
func NewExportHandler(s *session.Session) *ExportHandler {
	return &ExportHandler{session: s}
}

// Offline writes the self-contained HTML document for the whole trip.
// GET /api/export?rate=0.03
func (h *ExportHandler) Offline(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doc, err := export.RenderOffline(h.session.Current(), rateParam(r))
	if err != nil {
		log.WithError(err).Error("offline export failed")
		writeError(w, http.StatusInternalServerError, "Failed to render export")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.html"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
