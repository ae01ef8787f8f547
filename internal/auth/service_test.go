package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
	"github.com/Joaolrm/racha-do-mes-fe/internal/api/apitest"
	"github.com/Joaolrm/racha-do-mes-fe/internal/auth"
	"github.com/Joaolrm/racha-do-mes-fe/internal/session"
)

func authBackend(t *testing.T) *apitest.Server {
	t.Helper()
	return apitest.New(func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req auth.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			if req.EmailOrPhone != "ana@example.com" || req.Password != "s3cret" {
				apitest.Error(w, http.StatusUnauthorized, "credenciais inválidas")
				return
			}
			apitest.JSON(w, http.StatusOK, auth.Response{
				AccessToken: "token-abc",
				User:        session.User{ID: 1, Name: "Ana", Email: "ana@example.com"},
			})
		})
		r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			var req auth.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			apitest.JSON(w, http.StatusCreated, auth.Response{
				AccessToken: "token-new",
				User:        session.User{ID: 2, Name: req.Name},
			})
		})
	})
}

func newService(t *testing.T, baseURL string) (*auth.Service, *session.Session) {
	t.Helper()
	sess, err := session.Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := api.NewClient(baseURL, nil, sess, zap.NewNop().Sugar())
	return auth.NewService(auth.NewRepository(client), sess), sess
}

func TestLoginPopulatesSession(t *testing.T) {
	srv := authBackend(t)
	defer srv.Close()

	svc, sess := newService(t, srv.URL)

	u, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "token-abc", sess.Token())
}

func TestLoginBadCredentials(t *testing.T) {
	srv := authBackend(t)
	defer srv.Close()

	svc, sess := newService(t, srv.URL)

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
	assert.False(t, sess.Authenticated())
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newService(t, "http://unused.invalid")

	_, err := svc.Login(context.Background(), "  ", "pass")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)

	_, err = svc.Login(context.Background(), "ana@example.com", "")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService(t, "http://unused.invalid")

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{Password: "x", Email: "a@b.c"})
	assert.ErrorIs(t, err, auth.ErrMissingName)

	_, err = svc.Register(context.Background(), &auth.RegisterRequest{Name: "Ana", Password: "x"})
	assert.ErrorIs(t, err, auth.ErrMissingContact)

	_, err = svc.Register(context.Background(), &auth.RegisterRequest{Name: "Ana", Email: "a@b.c"})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestRegisterAndLogout(t *testing.T) {
	srv := authBackend(t)
	defer srv.Close()

	svc, sess := newService(t, srv.URL)

	u, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bruno", u.Name)
	assert.Equal(t, "token-new", sess.Token())

	require.NoError(t, svc.Logout())
	assert.False(t, sess.Authenticated())
}
