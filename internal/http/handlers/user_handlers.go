package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/http/middleware"
)

// UserHandlers handles account and session HTTP requests
type UserHandlers struct {
	authSvc  domain.AuthService
	tokenTTL time.Duration
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService, tokenTTL time.Duration) *UserHandlers {
	return &UserHandlers{
		authSvc:  authSvc,
		tokenTTL: tokenTTL,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	FullName string `json:"fullname" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required,min=10"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	UserID string `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// Register handles user registration
func (h *UserHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.FullName, req.Email, req.Mobile, req.Password)
	if err != nil {
		switch err {
		case domain.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		case domain.ErrMobileTaken:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is already in use. Please enter a different number."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please verify your email using the OTP sent.",
		"user":    userView(user),
		"userId":  user.ID,
	})
}

// VerifyOTP handles email verification
func (h *UserHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and OTP are required"})
		return
	}

	err := h.authSvc.VerifyOTP(c.Request.Context(), req.UserID, req.OTP)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case domain.ErrOTPNotIssued:
			c.JSON(http.StatusBadRequest, gin.H{"message": "OTP not generated"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"message": "OTP expired"})
		case domain.ErrOTPMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// Login handles user login
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	h.setTokenCookie(c, result.Token, int(h.tokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
	})
}

// Me returns the authenticated user, requiring a verified email
func (h *UserHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"message": "Please verify your email to access this page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}

// Profile returns the authenticated user's profile
func (h *UserHandlers) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	profile, err := h.authSvc.Profile(c.Request.Context(), user.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"user":    userView(profile),
	})
}

// Logout blacklists the presented token and clears the cookie
func (h *UserHandlers) Logout(c *gin.Context) {
	token, ok := middleware.RawToken(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Delete removes the account along with its cafe and menu items
func (h *UserHandlers) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	if err := h.authSvc.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "User, associated cafes, and menu items deleted successfully"})
}

// setTokenCookie writes the session cookie: HTTP-only, secure, cross-site.
func (h *UserHandlers) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", true, true)
}

// userView strips credential material from a user before serialization.
func userView(user *domain.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"fullname":   user.FullName,
		"email":      user.Email,
		"mobile":     user.Mobile,
		"isVerified": user.IsVerified,
		"createdAt":  user.CreatedAt,
	}
}
