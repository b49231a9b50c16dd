//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"staybook/internal/handler/dto/request"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@test.example.com", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "guest@test.example.com", "guest")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@test.example.com", "guest")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@test.example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@test.example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@test.example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@test.example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@test.example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@test.example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res loginResponse
			_ = httptest.DecodeResponseBody(t, w.Body, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, tt.email, res.User.Email)

			accessCookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, accessCookie)
			refreshCookie := httptest.ExtractCookie(w, "refresh_token")
			require.NotNil(t, refreshCookie)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login_at not updated")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@test.example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res map[string]string
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res["access_token"])
	})

	s.Run("invalid refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("access token rejected as refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@test.example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var res loginResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.AccessToken}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns current user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@test.example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var login loginResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &login)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me map[string]any
		_ = httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "admin@test.example.com", me["email"])
		require.Equal(t, "admin", me["role"])
	})

	s.Run("rejects missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@test.example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		cookies := httptest.ExtractCookies(w)
		var login loginResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &login)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, login.AccessToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
