package redirect

import (
	"context"
	"net/http"

	"shortlink/internal/http/httputils"

	"github.com/gorilla/mux"
)

type LinkService interface {
	Resolve(ctx context.Context, shortCode string) (string, error)
}

// HandlerRedirect - 302 на оригинальный URL, переход записывается
// как событие доступа
func HandlerRedirect(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		shortCode := mux.Vars(r)["code"]
		if shortCode == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "short code is required")
			return
		}

		originalURL, err := svc.Resolve(ctx, shortCode)
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		http.Redirect(w, r, originalURL, http.StatusFound)
	}
}
