package user

import (
	"net/http"

	"news-explorer/internal/handler/http/auth"
	userUC "news-explorer/internal/usecase/user"
	"news-explorer/internal/validation"
)

// Register mounts the account routes under prefix.
// Signup and signin are public; /user/me requires a bearer token.
func Register(mux *http.ServeMux, prefix string, svc *userUC.Service, v *validation.Validator, tokens auth.TokenVerifier) {
	mux.Handle("POST "+prefix+"/auth/signup", SignupHandler{Svc: svc, Validator: v})
	mux.Handle("POST "+prefix+"/auth/signin", SigninHandler{Svc: svc, Validator: v})
	mux.Handle("GET "+prefix+"/user/me", auth.Authz(tokens, MeHandler{Svc: svc}.Serve))
}
