package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shenfen/internal/card"
	"shenfen/internal/identity"
	"shenfen/internal/identity/models"
	"shenfen/internal/transport/httputil"
	dErrors "shenfen/pkg/domain-errors"
)

// CardService renders one composited card image.
type CardService interface {
	Render(ctx context.Context, rec *models.IdentityRecord) (*card.RenderedCard, error)
}

// CardHandler serves card rendering. A request either posts a complete
// record or asks for a fresh one to be generated first.
type CardHandler struct {
	cards      CardService
	identities IdentityService
	logger     *slog.Logger
}

func NewCardHandler(cards CardService, identities IdentityService, logger *slog.Logger) *CardHandler {
	return &CardHandler{cards: cards, identities: identities, logger: logger}
}

// Register mounts the card routes.
func (h *CardHandler) Register(r chi.Router) {
	r.Post("/cards", h.handleRender)
}

type cardRequest struct {
	Record *models.IdentityRecord `json:"record"`
	Seed   int64                  `json:"seed"`
	Gender string                 `json:"gender"`
	MinAge int                    `json:"min_age"`
	MaxAge int                    `json:"max_age"`
	Region string                 `json:"region"`
}

func (h *CardHandler) handleRender(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	rec := req.Record
	if rec == nil {
		res, err := h.identities.Generate(r.Context(), identity.GenerateParams{
			Count:      1,
			Seed:       req.Seed,
			Gender:     models.Gender(req.Gender),
			MinAge:     req.MinAge,
			MaxAge:     req.MaxAge,
			RegionCode: req.Region,
		})
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		rec = res.Records[0]
	}

	rendered, err := h.cards.Render(r.Context(), rec)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if rendered.Backend != "" {
		w.Header().Set("X-Avatar-Backend", string(rendered.Backend))
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered.PNG); err != nil {
		h.logger.Warn("card response write failed", "error", err)
	}
}
