package update

import (
	"context"
	"encoding/json"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/identity"
	"shortlink/internal/http/httputils"

	"github.com/gorilla/mux"
)

type LinkService interface {
	Update(ctx context.Context, shortCode, newURL string, identity *models.Identity) error
}

// HandlerUpdate меняет целевой URL, только для владельца
func HandlerUpdate(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		shortCode := mux.Vars(r)["code"]

		var req dto.LinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}
		if req.Link == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		if err := svc.Update(ctx, shortCode, req.Link, identity.FromContext(ctx)); err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Link has been updated"})
	}
}
