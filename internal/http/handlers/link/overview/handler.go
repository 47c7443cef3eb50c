package overview

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/identity"
	"shortlink/internal/http/httputils"
)

type OverviewService interface {
	Overview(ctx context.Context, identity *models.Identity) (models.UserOverview, error)
}

// HandlerOverview - сводка по ссылкам аутентифицированного пользователя
func HandlerOverview(svc OverviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userOverview, err := svc.Overview(ctx, identity.FromContext(ctx))
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.OverviewResponseFromDomain(userOverview))
	}
}
