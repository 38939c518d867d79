package article

import (
	"log/slog"
	"net/http"
	"time"

	"news-explorer/internal/handler/http/auth"
	"news-explorer/internal/handler/http/respond"
	"news-explorer/internal/observability/logging"
	artUC "news-explorer/internal/usecase/article"
)

// ListHandler returns the caller's saved articles, newest first.
type ListHandler struct {
	Svc *artUC.Service
}

// Serve is an auth.PrincipalHandler.
func (h ListHandler) Serve(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	ctx := r.Context()
	start := time.Now()

	articles, err := h.Svc.List(ctx, p.UserID)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}

	logging.WithRequestID(ctx, logging.FromContext(ctx)).Debug("listed saved articles",
		slog.Int("count", len(out)),
		slog.Duration("duration", time.Since(start)))

	respond.JSON(w, http.StatusOK, out)
}
