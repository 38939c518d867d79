package user

import (
	"net/http"

	"news-explorer/internal/handler/http/respond"
	userUC "news-explorer/internal/usecase/user"
	"news-explorer/internal/validation"
)

// SignupHandler registers a new account.
type SignupHandler struct {
	Svc       *userUC.Service
	Validator *validation.Validator
}

func (h SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req validation.SignupRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}

	u, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(u))
}
