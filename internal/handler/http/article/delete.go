package article

import (
	"net/http"

	"news-explorer/internal/handler/http/auth"
	"news-explorer/internal/handler/http/respond"
	artUC "news-explorer/internal/usecase/article"
	"news-explorer/internal/validation"
)

// DeleteHandler removes one of the caller's articles. A malformed id is
// rejected before the store is queried.
type DeleteHandler struct {
	Svc       *artUC.Service
	Validator *validation.Validator
}

// Serve is an auth.PrincipalHandler.
func (h DeleteHandler) Serve(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	id := r.PathValue("id")
	if err := h.Validator.PathID(id); err != nil {
		respond.Failure(w, r, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, p.UserID); err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.Message(w, http.StatusOK, MsgDeleted)
}
