package validation

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-explorer/internal/domain/entity"
)

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var vErr *entity.ValidationError
	require.True(t, errors.As(err, &vErr), "expected *entity.ValidationError, got %T (%v)", err, err)
	return vErr.Message
}

func TestNew_RegistersCustomRules(t *testing.T) {
	assert.NotPanics(t, func() { New() })
}

func TestSignupRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     SignupRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  SignupRequest{Name: "Al", Email: "a@b.com", Password: "Abcdefg1"},
		},
		{
			name:    "missing name",
			req:     SignupRequest{Email: "a@b.com", Password: "Abcdefg1"},
			wantMsg: `The "name" field is required`,
		},
		{
			name:    "short name",
			req:     SignupRequest{Name: "A", Email: "a@b.com", Password: "Abcdefg1"},
			wantMsg: `The minimum length of the "name" field is 2`,
		},
		{
			name:    "long name",
			req:     SignupRequest{Name: strings.Repeat("a", 31), Email: "a@b.com", Password: "Abcdefg1"},
			wantMsg: `The maximum length of the "name" field is 30`,
		},
		{
			name:    "bad email",
			req:     SignupRequest{Name: "Al", Email: "not-an-email", Password: "Abcdefg1"},
			wantMsg: `The "email" field must be a valid email address`,
		},
		{
			name:    "short password",
			req:     SignupRequest{Name: "Al", Email: "a@b.com", Password: "Ab1"},
			wantMsg: "Password must be at least 8 characters long",
		},
		{
			name:    "weak password",
			req:     SignupRequest{Name: "Al", Email: "a@b.com", Password: "abcdefgh"},
			wantMsg: "Password must contain at least one uppercase letter, one lowercase letter, and one number",
		},
		{
			name: "password of exactly 72 bytes",
			req:  SignupRequest{Name: "Al", Email: "a@b.com", Password: "Abcdefg1" + strings.Repeat("x", 64)},
		},
		{
			name:    "password over 72 bytes",
			req:     SignupRequest{Name: "Al", Email: "a@b.com", Password: "Abcdefg1" + strings.Repeat("x", 72)},
			wantMsg: "Password must be at most 72 bytes long",
		},
		{
			name:    "multibyte password counted in bytes",
			req:     SignupRequest{Name: "Al", Email: "a@b.com", Password: "Abcdefg1" + strings.Repeat("é", 33)},
			wantMsg: "Password must be at most 72 bytes long",
		},
		{
			name:    "first failure wins",
			req:     SignupRequest{Name: "A", Email: "bad", Password: "x"},
			wantMsg: `The minimum length of the "name" field is 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantMsg, firstMessage(t, err))
		})
	}
}

func TestSigninRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(SigninRequest{Email: "a@b.com", Password: "x"}))
	assert.Equal(t, MsgCredentialsRequired,
		firstMessage(t, v.Struct(SigninRequest{Email: "a@b.com"})))
	assert.Equal(t, MsgCredentialsRequired,
		firstMessage(t, v.Struct(SigninRequest{Password: "x"})))
	assert.Equal(t, `The "email" field must be a valid email address`,
		firstMessage(t, v.Struct(SigninRequest{Email: "nope", Password: "x"})))
}

func validArticle() ArticleRequest {
	return ArticleRequest{
		Keyword:     "golang",
		Title:       "Go 1.25 released",
		Content:     "The Go team announced...",
		URL:         "https://go.dev/blog/go1.25",
		URLToImage:  "https://go.dev/images/gopher.png",
		PublishedAt: "2025-08-12T10:00:00Z",
	}
}

func TestArticleRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*ArticleRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*ArticleRequest) {}},
		{name: "image optional", mutate: func(a *ArticleRequest) { a.URLToImage = "" }},
		{name: "published optional", mutate: func(a *ArticleRequest) { a.PublishedAt = "" }},
		{name: "fractional seconds", mutate: func(a *ArticleRequest) { a.PublishedAt = "2025-08-12T10:00:00.123Z" }},
		{
			name:    "missing keyword",
			mutate:  func(a *ArticleRequest) { a.Keyword = "" },
			wantMsg: `The "keyword" field is required`,
		},
		{
			name:    "long keyword",
			mutate:  func(a *ArticleRequest) { a.Keyword = strings.Repeat("k", 31) },
			wantMsg: `The maximum length of the "keyword" field is 30`,
		},
		{
			name:    "short title",
			mutate:  func(a *ArticleRequest) { a.Title = "T" },
			wantMsg: "Title name must be at least 2 characters long",
		},
		{
			name:    "missing content",
			mutate:  func(a *ArticleRequest) { a.Content = "" },
			wantMsg: `The "content" field is required`,
		},
		{
			name:    "missing url",
			mutate:  func(a *ArticleRequest) { a.URL = "" },
			wantMsg: `The "url" field is required`,
		},
		{
			name:    "bad url",
			mutate:  func(a *ArticleRequest) { a.URL = "not a url" },
			wantMsg: "Must be a valid URL",
		},
		{
			name:    "bad image url",
			mutate:  func(a *ArticleRequest) { a.URLToImage = "ftp://x.y/z.png" },
			wantMsg: "You must enter a valid URL",
		},
		{
			name:    "bad timestamp",
			mutate:  func(a *ArticleRequest) { a.PublishedAt = "yesterday" },
			wantMsg: `The "publishedAt" field must be an RFC 3339 timestamp`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validArticle()
			tt.mutate(&req)
			err := v.Struct(req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantMsg, firstMessage(t, err))
		})
	}
}

func TestArticleRequest_PublishedTime(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		got, err := ArticleRequest{}.PublishedTime()
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ArticleRequest{PublishedAt: "2025-02-11T10:00:00+02:00"}.PublishedTime()
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 2, 11, 8, 0, 0, 0, time.UTC)))
	})

	t.Run("unparsable", func(t *testing.T) {
		_, err := ArticleRequest{PublishedAt: "yesterday"}.PublishedTime()
		assert.Equal(t, MsgInvalidPublishedAt, firstMessage(t, err))
	})
}

func TestPathID(t *testing.T) {
	v := New()

	assert.NoError(t, v.PathID("507f1f77bcf86cd799439011"))
	assert.Equal(t, `The "id" must be 24 hexadecimal characters`, firstMessage(t, v.PathID("")))
	assert.Equal(t, `The "id" must be 24 hexadecimal characters`, firstMessage(t, v.PathID("abc")))
	assert.Equal(t, `The "id" must contain only hexadecimal characters`,
		firstMessage(t, v.PathID("507f1f77bcf86cd79943901z")))
	assert.Equal(t, `The "id" must contain only hexadecimal characters`,
		firstMessage(t, v.PathID("0x7f1f77bcf86cd799439011")))
}

func TestBind(t *testing.T) {
	v := New()

	t.Run("decodes and validates", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signin", strings.NewReader(`{"email":"a@b.com","password":"x","extra":1}`))
		var dst SigninRequest
		require.NoError(t, v.Bind(req, &dst))
		assert.Equal(t, "a@b.com", dst.Email)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signin", strings.NewReader(`{"email":`))
		var dst SigninRequest
		err := v.Bind(req, &dst)
		var domainErr *entity.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, entity.KindBadRequest, domainErr.Kind)
		assert.Equal(t, MsgInvalidBody, domainErr.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signin", strings.NewReader(""))
		var dst SigninRequest
		err := v.Bind(req, &dst)
		var domainErr *entity.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, entity.KindBadRequest, domainErr.Kind)
	})

	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(`{"name":"  Al  ","email":" a@b.com ","password":"Abcdefg1"}`))
		var dst SignupRequest
		require.NoError(t, v.Bind(req, &dst))
		assert.Equal(t, "Al", dst.Name)
		assert.Equal(t, "a@b.com", dst.Email)
	})

	t.Run("whitespace-only name is missing", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(`{"name":"   ","email":"a@b.com","password":"Abcdefg1"}`))
		var dst SignupRequest
		assert.Equal(t, `The "name" field is required`, firstMessage(t, v.Bind(req, &dst)))
	})

	t.Run("padded short name", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(`{"name":"  A  ","email":"a@b.com","password":"Abcdefg1"}`))
		var dst SignupRequest
		assert.Equal(t, `The minimum length of the "name" field is 2`, firstMessage(t, v.Bind(req, &dst)))
	})

	t.Run("validation failure surfaces first field", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signin", strings.NewReader(`{"email":"bad"}`))
		var dst SigninRequest
		assert.Equal(t, `The "email" field must be a valid email address`, firstMessage(t, v.Bind(req, &dst)))
	})
}
