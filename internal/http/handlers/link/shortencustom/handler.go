package shortencustom

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
	CreateWithAlias(ctx context.Context, originalURL, customAlias string, identity *models.Identity, expiresAt *time.Time) (models.Link, error)
}

// HandlerShortenCustom создает ссылку с пользовательским алиасом,
// занятый алиас - 400
func HandlerShortenCustom(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CustomLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}
		if req.Link == "" || req.CustomAlias == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		link, err := svc.CreateWithAlias(ctx, req.Link, req.CustomAlias, identity.FromContext(ctx), req.ExpiresAt)
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.ShortenResponseFromDomain(link))
	}
}
