package getping

import (
	"context"
	"net/http"

	"shortlink/internal/http/httputils"
)

type Pinger interface {
	PingDataBase(ctx context.Context) error
}

func HandlerPing(svc Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingDataBase(r.Context()); err != nil {
			httputils.WriteTextError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
