package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bithunter/bithunter-go/core/gateway"
)

func newClient(t *testing.T, srv *httptest.Server) *gateway.Client {
	t.Helper()
	c, err := gateway.New(gateway.Config{BaseURL: srv.URL, RequestTimeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := gateway.New(gateway.Config{})
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "pw1", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"access": "the-access-token",
			"user":   map[string]any{"id": 42, "username": "alice", "email": "alice@example.com"},
		})
	}))
	defer srv.Close()

	res, err := newClient(t, srv).Login(context.Background(), "alice", "pw1")

	require.NoError(t, err)
	assert.Equal(t, "the-access-token", res.AccessToken)
	require.NotNil(t, res.User)
	assert.EqualValues(t, 42, res.User.ID)
	assert.Equal(t, "alice", res.User.Username)
}

func TestLogin_WithoutUserObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "tok"})
	}))
	defer srv.Close()

	res, err := newClient(t, srv).Login(context.Background(), "alice", "pw1")

	require.NoError(t, err)
	assert.Equal(t, "tok", res.AccessToken)
	assert.Nil(t, res.User)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Login(context.Background(), "alice", "wrong")

	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, gateway.ReasonInvalidCredentials, authErr.Reason)
}

func TestLogin_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Login(context.Background(), "alice", "pw1")

	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, gateway.ReasonMalformedResponse, authErr.Reason)
}

func TestLogin_UnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Login(context.Background(), "alice", "pw1")

	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, gateway.ReasonMalformedResponse, authErr.Reason)
}

func TestLogin_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"something": "else"})
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Login(context.Background(), "alice", "pw1")

	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, gateway.ReasonMalformedResponse, authErr.Reason)
}

func TestLogin_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newClient(t, srv)
	srv.Close() // nothing is listening anymore

	_, err := client.Login(context.Background(), "alice", "pw1")

	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, gateway.ReasonNetworkUnavailable, authErr.Reason)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/register/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["username"])
		assert.Equal(t, "bob@example.com", body["email"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newClient(t, srv).Register(context.Background(), "bob", "bob@example.com", "secret1")

	assert.NoError(t, err)
}

func TestRegister_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newClient(t, srv).Register(context.Background(), "bob", "bad-email", "x")

	assert.ErrorIs(t, err, gateway.ErrRegistrationFailed)
}

func TestProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/profile/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "username": "alice"})
	}))
	defer srv.Close()

	user, err := newClient(t, srv).Profile(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.EqualValues(t, 42, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newClient(t, srv).Profile(context.Background(), "stale")

	assert.ErrorIs(t, err, gateway.ErrProfileFetchFailed)
}

func TestAuthError_Message(t *testing.T) {
	err := gateway.NewAuthError(gateway.ReasonInvalidCredentials, nil)
	assert.Contains(t, err.Error(), "invalid_credentials")
}
