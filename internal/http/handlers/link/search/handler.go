package search

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"
)

type LinkService interface {
	Search(ctx context.Context, originalURL string) (models.Link, error)
}

// HandlerSearch ищет живую ссылку по оригинальному URL
func HandlerSearch(svc LinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		originalURL := r.URL.Query().Get("original_url")
		if originalURL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "original_url is required")
			return
		}

		link, err := svc.Search(ctx, originalURL)
		if err != nil {
			httputils.WriteJSONError(w, httputils.StatusFromError(err), err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SearchResponse{ShortLink: link.ShortCode})
	}
}
