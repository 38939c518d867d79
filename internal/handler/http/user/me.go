package user

import (
	"net/http"

	"news-explorer/internal/handler/http/auth"
	"news-explorer/internal/handler/http/respond"
	userUC "news-explorer/internal/usecase/user"
)

// MeHandler returns the account of the token subject.
type MeHandler struct {
	Svc *userUC.Service
}

// Serve is an auth.PrincipalHandler.
func (h MeHandler) Serve(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	u, err := h.Svc.Current(r.Context(), p.UserID)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}
