// Package github exchanges GitHub OAuth authorization codes for user identity.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tillyhacks/registration-backend/internal/auth"
)

var (
	// Made variables for testing purposes
	tokenURL  = "https://github.com/login/oauth/access_token"
	userURL   = "https://api.github.com/user"
	emailsURL = "https://api.github.com/user/emails"
)

// Verifier exchanges GitHub OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a GitHub OAuth verifier.
// Parameters come from config.AuthConfig: GitHubClientID, GitHubClientSecret,
// GitHubRedirectURI.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "github_oauth"),
	}
}

// tokenResponse represents the response from GitHub's token endpoint.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// userResponse represents the response from GitHub's /user endpoint.
type userResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// emailEntry represents one entry from GitHub's /user/emails endpoint.
type emailEntry struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// VerifyCode exchanges an authorization code for user identity.
// The provider parameter is ignored (always "github"), but kept for interface
// compatibility.
func (v *Verifier) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := v.fetchUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	// GitHub hides the email on /user when set to private; fall back to the
	// verified primary address from /user/emails.
	email := user.Email
	if email == "" {
		email, err = v.fetchPrimaryEmail(ctx, accessToken)
		if err != nil {
			return nil, err
		}
	}

	identity := &auth.OAuthIdentity{
		ProviderID: strconv.FormatInt(user.ID, 10),
		Email:      email,
	}
	if user.Name != "" {
		identity.Name = &user.Name
	}
	if user.Login != "" {
		identity.PreferredUsername = &user.Login
	}

	v.log.DebugContext(ctx, "github oauth success", slog.String("login", user.Login))

	return identity, nil
}

// exchangeCode exchanges the authorization code for an access token.
func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("code", code)
	data.Set("client_id", v.clientID)
	data.Set("client_secret", v.clientSecret)
	data.Set("redirect_uri", v.redirectURI)

	encodedData := data.Encode()

	bodyReader := strings.NewReader(encodedData)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, bodyReader)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encodedData)), nil
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("oauth: github unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.String("error", "failed to read response"))
		return "", fmt.Errorf("oauth: failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("oauth: github unavailable")
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.String("error", "invalid json"))
		return "", fmt.Errorf("oauth: invalid token response")
	}

	// GitHub answers 200 even for bad codes; the error lives in the body.
	if tokenResp.Error != "" {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.String("error", tokenResp.Error))
		return "", fmt.Errorf("oauth: invalid or expired code")
	}
	if tokenResp.AccessToken == "" {
		v.log.ErrorContext(ctx, "github oauth token exchange failed", slog.String("error", "missing access_token"))
		return "", fmt.Errorf("oauth: invalid token response")
	}

	return tokenResp.AccessToken, nil
}

// fetchUser fetches the authenticated user using the access token.
func (v *Verifier) fetchUser(ctx context.Context, accessToken string) (*userResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "github oauth user fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "github oauth user fetch failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		v.log.ErrorContext(ctx, "github oauth user fetch failed", slog.String("error", "invalid json"))
		return nil, fmt.Errorf("oauth: invalid user response")
	}

	if user.ID == 0 {
		v.log.ErrorContext(ctx, "github oauth user fetch failed", slog.String("error", "missing user id"))
		return nil, fmt.Errorf("oauth: invalid user response")
	}

	return &user, nil
}

// fetchPrimaryEmail returns the user's verified primary email address.
func (v *Verifier) fetchPrimaryEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, emailsURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create emails request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "github oauth emails fetch failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("oauth: failed to fetch user email")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "github oauth emails fetch failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("oauth: failed to fetch user email")
	}

	var emails []emailEntry
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		v.log.ErrorContext(ctx, "github oauth emails fetch failed", slog.String("error", "invalid json"))
		return "", fmt.Errorf("oauth: invalid emails response")
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	return "", fmt.Errorf("oauth: no verified primary email")
}

// doWithRetry executes an HTTP request with retry logic.
// Retries once on 5xx errors or network errors with 500ms backoff.
// Note: For POST requests, the body must be reusable (e.g., strings.Reader).
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}
