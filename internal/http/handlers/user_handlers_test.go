package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/http/middleware"
	"github.com/you/scandine/internal/mocks"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestUserHandlers_Register(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		setupMocks      func(authSvc *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful registration",
			body:            `{"fullname":"Asha Rao","email":"asha@example.com","mobile":"+911234567890","password":"securepassword123"}`,
			setupMocks:      func(authSvc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "User registered successfully. Please verify your email using the OTP sent.",
		},
		{
			name:           "missing fields fail validation",
			body:           `{"email":"asha@example.com"}`,
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password fails validation",
			body:           `{"fullname":"Asha Rao","email":"asha@example.com","mobile":"+911234567890","password":"abc"}`,
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"fullname":"Asha Rao","email":"asha@example.com","mobile":"+911234567890","password":"securepassword123"}`,
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "User already exists",
		},
		{
			name: "duplicate mobile",
			body: `{"fullname":"Asha Rao","email":"asha@example.com","mobile":"+911234567890","password":"securepassword123"}`,
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error) {
					return nil, domain.ErrMobileTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Mobile number is already in use. Please enter a different number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mocks.MockAuthService{}
			tt.setupMocks(authSvc)
			h := NewUserHandlers(authSvc, time.Hour)

			w := postJSON(t, h.Register, "/api/users/register", tt.body)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %v", tt.expectedMessage, body["message"])
				}
			}
		})
	}
}

func TestUserHandlers_RegisterResponseOmitsCredentials(t *testing.T) {
	authSvc := &mocks.MockAuthService{}
	authSvc.RegisterFunc = func(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error) {
		return &domain.User{
			ID:           "user-1",
			FullName:     fullName,
			Email:        email,
			Mobile:       mobile,
			PasswordHash: "bcrypt-hash",
			OTPHash:      "otp-digest",
		}, nil
	}
	h := NewUserHandlers(authSvc, time.Hour)

	w := postJSON(t, h.Register, "/api/users/register",
		`{"fullname":"Asha Rao","email":"asha@example.com","mobile":"+911234567890","password":"securepassword123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	raw := w.Body.String()
	if strings.Contains(raw, "bcrypt-hash") || strings.Contains(raw, "otp-digest") {
		t.Errorf("response must not leak credential material: %s", raw)
	}
	body := decodeBody(t, w)
	if body["userId"] != "user-1" {
		t.Errorf("expected userId in response, got %v", body["userId"])
	}
}

func TestUserHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name            string
		serviceError    error
		expectedStatus  int
		expectedMessage string
	}{
		{"verified", nil, http.StatusOK, "Email verified successfully"},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"not issued", domain.ErrOTPNotIssued, http.StatusBadRequest, "OTP not generated"},
		{"expired", domain.ErrOTPExpired, http.StatusBadRequest, "OTP expired"},
		{"wrong code", domain.ErrOTPMismatch, http.StatusBadRequest, "Invalid OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mocks.MockAuthService{}
			authSvc.VerifyOTPFunc = func(ctx context.Context, userID, code string) error {
				return tt.serviceError
			}
			h := NewUserHandlers(authSvc, time.Hour)

			w := postJSON(t, h.VerifyOTP, "/api/users/verify-otp", `{"userId":"user-1","otp":"123456"}`)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %v", tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestUserHandlers_Login(t *testing.T) {
	t.Run("successful login sets the session cookie", func(t *testing.T) {
		h := NewUserHandlers(&mocks.MockAuthService{}, time.Hour)

		w := postJSON(t, h.Login, "/api/users/login", `{"email":"asha@example.com","password":"securepassword123"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["token"] != "signed-token" {
			t.Errorf("expected the issued token in the body, got %v", body["token"])
		}

		cookie := findCookie(t, w, middleware.TokenCookieName)
		if cookie == nil {
			t.Fatal("expected the session cookie to be set")
		}
		if cookie.Value != "signed-token" {
			t.Errorf("expected the cookie to carry the token, got %q", cookie.Value)
		}
		if !cookie.HttpOnly || !cookie.Secure {
			t.Error("expected an HTTP-only secure cookie")
		}
		if cookie.MaxAge != int(time.Hour.Seconds()) {
			t.Errorf("expected cookie max age %d, got %d", int(time.Hour.Seconds()), cookie.MaxAge)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		authSvc := &mocks.MockAuthService{}
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		}
		h := NewUserHandlers(authSvc, time.Hour)

		w := postJSON(t, h.Login, "/api/users/login", `{"email":"asha@example.com","password":"wrong"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
		if findCookie(t, w, middleware.TokenCookieName) != nil {
			t.Error("expected no cookie on failed login")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		authSvc := &mocks.MockAuthService{}
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserNotFound
		}
		h := NewUserHandlers(authSvc, time.Hour)

		w := postJSON(t, h.Login, "/api/users/login", `{"email":"asha@example.com","password":"securepassword123"}`)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestUserHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(t *testing.T, user *domain.User) *httptest.ResponseRecorder {
		t.Helper()
		h := NewUserHandlers(&mocks.MockAuthService{}, time.Hour)

		router := gin.New()
		router.GET("/me", func(c *gin.Context) {
			c.Set("auth_user", user)
		}, h.Me)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		return w
	}

	t.Run("verified user", func(t *testing.T) {
		w := serve(t, &domain.User{ID: "user-1", IsVerified: true})
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("unverified user gets 403", func(t *testing.T) {
		w := serve(t, &domain.User{ID: "user-1", IsVerified: false})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})
}

func TestUserHandlers_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var revoked string
	authSvc := &mocks.MockAuthService{}
	authSvc.LogoutFunc = func(ctx context.Context, token string) error {
		revoked = token
		return nil
	}
	h := NewUserHandlers(authSvc, time.Hour)

	router := gin.New()
	router.POST("/logout", func(c *gin.Context) {
		c.Set("auth_token", "session-token")
	}, h.Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if revoked != "session-token" {
		t.Errorf("expected the presented token revoked, got %q", revoked)
	}

	cookie := findCookie(t, w, middleware.TokenCookieName)
	if cookie == nil {
		t.Fatal("expected the session cookie to be cleared")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("expected an expired empty cookie, got value %q max age %d", cookie.Value, cookie.MaxAge)
	}
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
