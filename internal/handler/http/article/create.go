package article

import (
	"net/http"

	"news-explorer/internal/handler/http/auth"
	"news-explorer/internal/handler/http/respond"
	artUC "news-explorer/internal/usecase/article"
	"news-explorer/internal/validation"
)

// CreateHandler saves an article for the caller. The owner is always the
// principal; an owner in the body is ignored.
type CreateHandler struct {
	Svc       *artUC.Service
	Validator *validation.Validator
}

// Serve is an auth.PrincipalHandler.
func (h CreateHandler) Serve(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	var req validation.ArticleRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Failure(w, r, err)
		return
	}

	publishedAt, err := req.PublishedTime()
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	a, err := h.Svc.Save(r.Context(), p.UserID, artUC.SaveInput{
		Keyword:     req.Keyword,
		Source:      req.Source,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Content:     req.Content,
		URL:         req.URL,
		URLToImage:  req.URLToImage,
		PublishedAt: publishedAt,
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
