package user

import (
	"net/http"

	"news-explorer/internal/handler/http/respond"
	userUC "news-explorer/internal/usecase/user"
	"news-explorer/internal/validation"
)

// SigninHandler exchanges credentials for an access token.
type SigninHandler struct {
	Svc       *userUC.Service
	Validator *validation.Validator
}

func (h SigninHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req validation.SigninRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}

	res, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, LoginResponse{Token: res.Token, User: toDTO(res.User)})
}
