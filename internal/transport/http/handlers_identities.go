package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shenfen/internal/format"
	"shenfen/internal/identity"
	"shenfen/internal/identity/models"
	"shenfen/internal/transport/httputil"
	dErrors "shenfen/pkg/domain-errors"
)

// IdentityService is the slice of the generation facade the handlers use.
type IdentityService interface {
	Generate(ctx context.Context, p identity.GenerateParams) (*identity.Result, error)
}

// IdentityHandler serves record generation and field discovery.
type IdentityHandler struct {
	svc    IdentityService
	logger *slog.Logger
}

func NewIdentityHandler(svc IdentityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{svc: svc, logger: logger}
}

// Register mounts the identity routes.
func (h *IdentityHandler) Register(r chi.Router) {
	r.Post("/identities", h.handleGenerate)
	r.Get("/identities/fields", h.handleFields)
}

type generateRequest struct {
	Count  int      `json:"count"`
	Seed   int64    `json:"seed"`
	Gender string   `json:"gender"`
	MinAge int      `json:"min_age"`
	MaxAge int      `json:"max_age"`
	Region string   `json:"region"`
	Keys   []string `json:"keys"`
}

type generateResponse struct {
	Seed       int64 `json:"seed"`
	Count      int   `json:"count"`
	Identities any   `json:"identities"`
}

func (h *IdentityHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	// Validate the key selection before spending work on generation.
	fields, err := format.Fields(req.Keys)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.svc.Generate(r.Context(), identity.GenerateParams{
		Count:      req.Count,
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
	h.logger.Debug("identities generated", "count", len(res.Records), "seed", res.Seed)

	resp := generateResponse{Seed: res.Seed, Count: len(res.Records)}
	if len(req.Keys) == 0 {
		resp.Identities = res.Records
	} else {
		views := make([]map[string]any, len(res.Records))
		for i, rec := range res.Records {
			views[i] = fieldView(rec, fields)
		}
		resp.Identities = views
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// fieldView projects a record onto the selected fields, keeping numeric
// fields numeric in the JSON output.
func fieldView(rec *models.IdentityRecord, fields []string) map[string]any {
	view := make(map[string]any, len(fields))
	for _, field := range fields {
		switch field {
		case "age":
			view[field] = rec.Age
		case "height_cm":
			view[field] = rec.HeightCM
		case "weight_kg":
			view[field] = rec.WeightKG
		default:
			view[field] = rec.FieldValue(field)
		}
	}
	return view
}

func (h *IdentityHandler) handleFields(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"fields": identity.Fields()})
}
