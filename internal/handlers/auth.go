package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
	"github.com/md-rashed-zaman/bookinglite/libs/auth"
)

type AuthHandler struct {
	accounts storage.AccountStore
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(accounts storage.AccountStore, secret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{accounts: accounts, secret: secret, tokenTTL: tokenTTL}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type signinRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	IsSocialLogin bool   `json:"is_social_login"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Best-effort pre-check; the unique index on email is authoritative.
	exists, err := h.accounts.EmailExists(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to lookup account")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	account := model.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.accounts.Create(r.Context(), account); err != nil {
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "User already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"user_id": account.ID,
	})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	account, err := h.accounts.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to lookup account")
		return
	}

	// Social logins skip the password check. The claimed social identity is
	// not verified server-side.
	if !req.IsSocialLogin {
		if err := verifyPassword(account.PasswordHash, req.Password); err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
	}

	now := time.Now()
	token, err := auth.SignHS256(auth.Claims{
		UserID: account.ID,
		Iat:    now.Unix(),
		Exp:    now.Add(h.tokenTTL).Unix(),
	}, h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
		"user_id": account.ID,
	})
}

func hashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, raw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
}
