package shorten

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/identity"
	"shortlink/internal/http/httputils"
)

type LinkService interface {
	Create(ctx context.Context, originalURL string, identity *models.Identity, expiresAt *time.Time) (models.Link, error)
}

// HandlerShorten создает ссылку со случайным кодом, анонимам можно
func HandlerShorten(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.LinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}
		if req.Link == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		link, err := svc.Create(ctx, req.Link, identity.FromContext(ctx), req.ExpiresAt)
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.ShortenResponseFromDomain(link))
	}
}
