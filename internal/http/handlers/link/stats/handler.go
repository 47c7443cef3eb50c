package stats

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/identity"
	"shortlink/internal/http/httputils"

	"github.com/gorilla/mux"
)

type LinkService interface {
	Stats(ctx context.Context, shortCode string, identity *models.Identity) (models.LinkStats, error)
}

// HandlerStats отдает владельцу счетчики переходов по ссылке
func HandlerStats(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		shortCode := mux.Vars(r)["code"]

		linkStats, err := svc.Stats(ctx, shortCode, identity.FromContext(ctx))
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.StatsResponseFromDomain(linkStats))
	}
}
