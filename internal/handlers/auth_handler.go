package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"hanziclash/internal/credentials"
	"hanziclash/internal/security"
	"hanziclash/internal/service"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthHandler covers player signup and login plus guardian OAuth.
type AuthHandler struct {
	auth  *service.AuthService
	state *security.StateSigner

	googleConfig      *oauth2.Config
	oauthRedirectBase string
}

// NewAuthHandler creates a new auth handler. Guardian sign-in is Google
// only; an empty client id leaves the OAuth endpoints disabled.
func NewAuthHandler(auth *service.AuthService, state *security.StateSigner, googleClientID, googleClientSecret, oauthRedirectBase string) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		state: state,
		googleConfig: &oauth2.Config{
			ClientID:     googleClientID,
			ClientSecret: googleClientSecret,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		oauthRedirectBase: oauthRedirectBase,
	}
}

type signupRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	PIN    string `json:"pin"`
}

type loginRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

type sessionResponse struct {
	Player PlayerView `json:"player"`
}

// Signup creates a player profile and signs it in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	player, token, expires, err := h.auth.SignupPlayer(req.Name, req.Avatar, req.PIN)
	if err != nil {
		respondServiceError(w, err, "signup failed")
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, PlayerSessionCookie, token, expires))
	respondJSON(w, http.StatusCreated, sessionResponse{Player: playerView(player)})
}

// Login verifies a player's name and PIN.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	player, token, expires, err := h.auth.LoginPlayer(req.Name, req.PIN)
	if err != nil {
		respondServiceError(w, err, "login failed")
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, PlayerSessionCookie, token, expires))
	respondJSON(w, http.StatusOK, sessionResponse{Player: playerView(player)})
}

// Logout clears the player session cookie. The token itself simply
// expires; there is no server-side session to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, PlayerSessionCookie))
	respondJSON(w, http.StatusOK, nil)
}

// LogoutGuardian clears the guardian session cookie.
func (h *AuthHandler) LogoutGuardian(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, GuardianSessionCookie))
	respondJSON(w, http.StatusOK, nil)
}

// SuggestIdentity offers a generated name and PIN for the signup form,
// for kids who cannot think one up on the spot.
func (h *AuthHandler) SuggestIdentity(w http.ResponseWriter, r *http.Request) {
	name, err := credentials.GeneratePlayerName()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error", "failed to generate name", err)
		return
	}
	pin, err := credentials.GeneratePlayerPIN()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error", "failed to generate PIN", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": name, "pin": pin})
}

// StartOAuth begins the guardian Google sign-in. The state is bound to
// a throwaway handshake id stored in a short-lived cookie.
func (h *AuthHandler) StartOAuth(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("provider") != "google" || h.googleConfig.ClientID == "" {
		respondError(w, http.StatusBadRequest, "OAuth provider not configured", "", nil)
		return
	}

	sid := security.GenerateSessionID()
	state, err := h.state.GenerateState(sid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error", "failed to sign OAuth state", err)
		return
	}

	h.setTempCookie(w, r, oauthSIDCookie, sid)
	h.setTempCookie(w, r, oauthStateCookie, state)

	config := *h.googleConfig
	config.RedirectURL = h.oauthRedirectURL(r)
	http.Redirect(w, r, config.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusFound)
}

// OAuthCallback completes the guardian sign-in.
func (h *AuthHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("provider") != "google" || h.googleConfig.ClientID == "" {
		respondError(w, http.StatusBadRequest, "OAuth provider not configured", "", nil)
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing authorization code", "", nil)
		return
	}

	sidCookie, sidErr := r.Cookie(oauthSIDCookie)
	stateCookie, stateErr := r.Cookie(oauthStateCookie)
	if sidErr != nil || stateErr != nil ||
		stateCookie.Value != state ||
		!h.state.ValidateState(sidCookie.Value, state) {
		respondError(w, http.StatusBadRequest, "invalid OAuth state", "", nil)
		return
	}

	h.clearTempCookie(w, r, oauthSIDCookie)
	h.clearTempCookie(w, r, oauthStateCookie)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	config := *h.googleConfig
	config.RedirectURL = h.oauthRedirectURL(r)
	token, err := config.Exchange(ctx, code)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to exchange OAuth code", "", nil)
		return
	}

	subject, email, name, err := fetchGoogleUser(ctx, token)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to fetch Google profile", "oauth userinfo failed", err)
		return
	}

	_, sessionToken, expires, err := h.auth.OAuthLoginGuardian("google", subject, email, name)
	if err != nil {
		respondServiceError(w, err, "guardian sign-in failed")
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, GuardianSessionCookie, sessionToken, expires))
	http.Redirect(w, r, "/guardian", http.StatusSeeOther)
}

func fetchGoogleUser(ctx context.Context, token *oauth2.Token) (subject, email, name string, err error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", "", err
	}
	return payload.ID, payload.Email, payload.Name, nil
}

func (h *AuthHandler) oauthRedirectURL(r *http.Request) string {
	baseURL := strings.TrimSpace(h.oauthRedirectBase)
	if baseURL == "" {
		scheme := "http"
		if security.IsSecureRequest(r) {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, r.Host)
	}
	return strings.TrimRight(baseURL, "/") + "/auth/google/callback"
}

func (h *AuthHandler) setTempCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   security.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(oauthCookieTTL),
		MaxAge:   int(oauthCookieTTL.Seconds()),
	})
}

func (h *AuthHandler) clearTempCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   security.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
