package article

import (
	"net/http"

	"news-explorer/internal/handler/http/auth"
	artUC "news-explorer/internal/usecase/article"
	"news-explorer/internal/validation"
)

// Register mounts the article routes under prefix. Authorization runs before
// body or path validation, so an anonymous request is always a 401.
func Register(mux *http.ServeMux, prefix string, svc *artUC.Service, v *validation.Validator, tokens auth.TokenVerifier) {
	mux.Handle("GET "+prefix+"/articles", auth.Authz(tokens, ListHandler{Svc: svc}.Serve))
	mux.Handle("POST "+prefix+"/articles", auth.Authz(tokens, CreateHandler{Svc: svc, Validator: v}.Serve))
	mux.Handle("DELETE "+prefix+"/articles/{id}", auth.Authz(tokens, DeleteHandler{Svc: svc, Validator: v}.Serve))
}
