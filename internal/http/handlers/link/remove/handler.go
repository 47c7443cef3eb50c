package remove

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
	Delete(ctx context.Context, shortCode string, identity *models.Identity) error
}

// HandlerRemove навсегда удаляет ссылку владельца, без архива
func HandlerRemove(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		shortCode := mux.Vars(r)["code"]

		if err := svc.Delete(ctx, shortCode, identity.FromContext(ctx)); err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Link has been deleted"})
	}
}
