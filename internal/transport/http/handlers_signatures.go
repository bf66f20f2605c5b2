package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/signature"
	dErrors "ereporting/pkg/domain-errors"
)

// SignaturesHandler serves the mock e-signature endpoint. A missing document
// is reported inside a 200 body with ok=false, not as an HTTP error; the
// signing widget switches on the flag.
type SignaturesHandler struct {
	svc *signature.Service
}

func NewSignaturesHandler(svc *signature.Service) *SignaturesHandler {
	return &SignaturesHandler{svc: svc}
}

func (h *SignaturesHandler) Register(r chi.Router) {
	r.Post("/mock", h.handleSign)
}

func (h *SignaturesHandler) handleSign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DocumentID string `json:"documentId"`
		SignedBy   string `json:"signedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	WriteJSON(w, http.StatusOK, h.svc.Sign(r.Context(), body.DocumentID, body.SignedBy))
}
