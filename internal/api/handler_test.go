package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lounnaci/gestion-eau/internal/entity"
)

type fakeService struct {
	authenticate func(ctx context.Context, username, password string) (entity.Document, error)
	loginStatus  func(ctx context.Context, username string) (entity.LoginStatus, error)
	list         func(ctx context.Context, collection string) ([]entity.Document, error)
	save         func(ctx context.Context, collection string, doc entity.Document) (string, error)
	delete       func(ctx context.Context, collection, id string) error
	stats        func(ctx context.Context) (map[string]int, error)
}

func (s *fakeService) Authenticate(ctx context.Context, username, password string) (entity.Document, error) {
	return s.authenticate(ctx, username, password)
}

func (s *fakeService) LoginStatus(ctx context.Context, username string) (entity.LoginStatus, error) {
	return s.loginStatus(ctx, username)
}

func (s *fakeService) ListDocuments(ctx context.Context, collection string) ([]entity.Document, error) {
	return s.list(ctx, collection)
}

func (s *fakeService) SaveDocument(ctx context.Context, collection string, doc entity.Document) (string, error) {
	return s.save(ctx, collection, doc)
}

func (s *fakeService) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.delete(ctx, collection, id)
}

func (s *fakeService) Stats(ctx context.Context) (map[string]int, error) {
	return s.stats(ctx)
}

func newTestServer(s Service) *httptest.Server {
	return httptest.NewServer(NewRouter(NewHandler(s, "GestionEau"), NewMiddleware()))
}

func postLogin(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url+"/api/auth/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestLoginSuccess(t *testing.T) {
	srv := newTestServer(&fakeService{
		authenticate: func(_ context.Context, username, password string) (entity.Document, error) {
			require.Equal(t, "karim", username)
			require.Equal(t, "secret", password)

			return entity.Document{"id": "u1", "username": "karim", "role": "Agent"}, nil
		},
	})
	defer srv.Close()

	resp := postLogin(t, srv.URL, `{"username":"karim","password":"secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[LoginResponse](t, resp)
	require.True(t, body.Success)
	require.Equal(t, "karim", body.User.Field("username"))
	require.NotContains(t, body.User, "password")
}

func TestLoginMissingFields(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	for _, body := range []string{
		`{"username":"karim"}`,
		`{"password":"secret"}`,
		`{}`,
	} {
		resp := postLogin(t, srv.URL, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)

		out := decode[ResponseError](t, resp)
		require.Equal(t, "Nom d'utilisateur et mot de passe requis", out.Error)
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	resp := postLogin(t, srv.URL, `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := newTestServer(&fakeService{
		authenticate: func(context.Context, string, string) (entity.Document, error) {
			return nil, &entity.InvalidCredentialsError{RemainingAttempts: 2}
		},
	})
	defer srv.Close()

	resp := postLogin(t, srv.URL, `{"username":"karim","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode[LoginError](t, resp)
	require.Equal(t, "Identifiants incorrects. Il vous reste 2 tentatives.", body.Error)
	require.Equal(t, 2, body.RemainingAttempts)
	require.False(t, body.Blocked)
}

func TestLoginLastAttemptSingular(t *testing.T) {
	srv := newTestServer(&fakeService{
		authenticate: func(context.Context, string, string) (entity.Document, error) {
			return nil, &entity.InvalidCredentialsError{RemainingAttempts: 1}
		},
	})
	defer srv.Close()

	resp := postLogin(t, srv.URL, `{"username":"karim","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode[LoginError](t, resp)
	require.Equal(t, "Identifiants incorrects. Il vous reste 1 tentative.", body.Error)
}

func TestLoginBlocked(t *testing.T) {
	until := time.Now().Add(15 * time.Minute)

	tests := []struct {
		name      string
		triggered bool
		message   string
	}{
		{"fresh block", true, "Trop de tentatives échouées. Accès bloqué pour 15 minutes."},
		{"existing block", false, "Compte temporairement bloqué"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&fakeService{
				authenticate: func(context.Context, string, string) (entity.Document, error) {
					return nil, &entity.BlockedError{
						BlockedUntil: until,
						Remaining:    10 * time.Minute,
						Triggered:    tc.triggered,
					}
				},
			})
			defer srv.Close()

			resp := postLogin(t, srv.URL, `{"username":"karim","password":"secret"}`)
			require.Equal(t, http.StatusForbidden, resp.StatusCode)

			body := decode[LoginError](t, resp)
			require.Equal(t, tc.message, body.Error)
			require.True(t, body.Blocked)
			require.Equal(t, until.UnixMilli(), body.BlockedUntil)
			require.EqualValues(t, (10 * time.Minute).Milliseconds(), body.RemainingTime)
			require.Zero(t, body.RemainingAttempts)
		})
	}
}

func TestLoginStatusEndpoint(t *testing.T) {
	until := time.Now().Add(5 * time.Minute).Truncate(time.Millisecond)

	calls := 0

	srv := newTestServer(&fakeService{
		loginStatus: func(_ context.Context, username string) (entity.LoginStatus, error) {
			calls++

			require.Equal(t, "karim", username)

			return entity.LoginStatus{
				Blocked:       true,
				Attempts:      3,
				BlockedUntil:  &until,
				RemainingTime: 5 * 60 * 1000,
			}, nil
		},
	})
	defer srv.Close()

	// Polling the status twice yields the same answer; the endpoint is
	// read-only.
	for range 2 {
		resp, err := http.Get(srv.URL + "/api/auth/status/karim")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[entity.LoginStatus](t, resp)
		require.True(t, body.Blocked)
		require.Equal(t, 3, body.Attempts)
		require.EqualValues(t, 5*60*1000, body.RemainingTime)
	}

	require.Equal(t, 2, calls)
}

func TestListCollection(t *testing.T) {
	srv := newTestServer(&fakeService{
		list: func(_ context.Context, collection string) ([]entity.Document, error) {
			if collection != "clients" {
				return nil, entity.ErrUnknownCollection
			}

			return []entity.Document{{"id": "c1"}}, nil
		},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/clients")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	docs := decode[[]entity.Document](t, resp)
	require.Len(t, docs, 1)

	resp, err = http.Get(srv.URL + "/api/unknown")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decode[ResponseError](t, resp)
	require.Equal(t, "Collection inconnue", out.Error)
}

func TestSaveDocumentEndpoint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing id", entity.ErrMissingID, http.StatusBadRequest},
		{"unknown collection", entity.ErrUnknownCollection, http.StatusNotFound},
		{"admin exists", entity.ErrAdminExists, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&fakeService{
				save: func(context.Context, string, entity.Document) (string, error) {
					return "", tc.err
				},
			})
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/api/users", "application/json",
				strings.NewReader(`{"id":"u1"}`))
			require.NoError(t, err)
			require.Equal(t, tc.code, resp.StatusCode)
			resp.Body.Close()
		})
	}

	srv := newTestServer(&fakeService{
		save: func(_ context.Context, collection string, doc entity.Document) (string, error) {
			require.Equal(t, "requests", collection)
			return "0001/BR/2025", nil
		},
	})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/requests", "application/json",
		strings.NewReader(`{"id":"TEMP-1-BR-2025"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[SaveResponse](t, resp)
	require.True(t, body.Success)
	require.Equal(t, "0001/BR/2025", body.ID)
}

func TestDeleteDocumentEndpoint(t *testing.T) {
	srv := newTestServer(&fakeService{
		delete: func(_ context.Context, collection, id string) error {
			require.Equal(t, "clients", collection)
			require.Equal(t, "c1", id)

			return nil
		},
	})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/clients/c1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[DeleteResponse](t, resp)
	require.True(t, body.Success)
}

func TestSystemEndpoints(t *testing.T) {
	srv := newTestServer(&fakeService{
		stats: func(context.Context) (map[string]int, error) {
			return map[string]int{"clients": 2}, nil
		},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status := decode[StatusResponse](t, resp)
	require.Equal(t, "connected", status.Status)
	require.Equal(t, "GestionEau", status.Database)

	resp, err = http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decode[map[string]int](t, resp)
	require.Equal(t, 2, stats["clients"])
}

func TestCorsPreflight(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/auth/login", nil)
	require.NoError(t, err)

	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
