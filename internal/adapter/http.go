package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

type httpAuthClient struct {
	client    *utils.HTTPClient
	baseRoute string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthClient builds a client for the server listening on
// cfg.HTTPAddress with the commands under cfg.BaseRoute. cfg.RequestTimeout
// bounds every request.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPAuthClient(cfg config.Server, logger *logger.Logger) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	baseRoute := cfg.BaseRoute
	if baseRoute == "" {
		baseRoute = config.DefaultBaseRoute
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpAuthClient{
		client:    client,
		baseRoute: strings.TrimRight(baseRoute, "/"),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAuthClient) Login(ctx context.Context, userName, password string, persistCookie bool) (bool, error) {
	var ok bool
	resp, err := h.command(ctx, "/login", models.LoginRequest{
		UserName:      userName,
		Password:      password,
		PersistCookie: persistCookie,
	}, &ok)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}

	if ok {
		h.storeSessionToken(resp)
	}
	return ok, nil
}

func (h *httpAuthClient) Logout(ctx context.Context) error {
	if _, err := h.command(ctx, "/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	h.SetToken("")
	return nil
}

func (h *httpAuthClient) SetPassword(ctx context.Context, userName, password string, ignorePasswordStrengthPolicy bool) error {
	_, err := h.command(ctx, "/set-password", models.SetPasswordRequest{
		UserName:                     userName,
		Password:                     password,
		IgnorePasswordStrengthPolicy: ignorePasswordStrengthPolicy,
	}, nil)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

func (h *httpAuthClient) ChangeMyPassword(ctx context.Context, oldPassword, newPassword string) (bool, error) {
	var ok bool
	_, err := h.command(ctx, "/change-my-password", models.ChangeMyPasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, &ok)
	if err != nil {
		return false, fmt.Errorf("change my password: %w", err)
	}
	return ok, nil
}

func (h *httpAuthClient) UnlockUser(ctx context.Context, userName string) error {
	if _, err := h.command(ctx, "/unlock-user", models.UnlockUserRequest{UserName: userName}, nil); err != nil {
		return fmt.Errorf("unlock user: %w", err)
	}
	return nil
}

func (h *httpAuthClient) GeneratePasswordResetToken(ctx context.Context, userName string) (string, error) {
	var token string
	_, err := h.command(ctx, "/generate-password-reset-token", models.GeneratePasswordResetTokenRequest{UserName: userName}, &token)
	if err != nil {
		return "", fmt.Errorf("generate password reset token: %w", err)
	}
	return token, nil
}

func (h *httpAuthClient) SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string) error {
	_, err := h.command(ctx, "/send-password-reset-token", models.SendPasswordResetTokenRequest{
		UserName:             userName,
		AdditionalClientInfo: additionalClientInfo,
	}, nil)
	if err != nil {
		return fmt.Errorf("send password reset token: %w", err)
	}
	return nil
}

func (h *httpAuthClient) ResetPassword(ctx context.Context, userName, passwordResetToken, newPassword string) (bool, error) {
	var ok bool
	resp, err := h.command(ctx, "/reset-password", models.ResetPasswordRequest{
		UserName:           userName,
		PasswordResetToken: passwordResetToken,
		NewPassword:        newPassword,
	}, &ok)
	if err != nil {
		return false, fmt.Errorf("reset password: %w", err)
	}

	h.storeSessionToken(resp)
	return ok, nil
}

func (h *httpAuthClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// command POSTs body to the command path and decodes the JSON result into
// result when it is not nil.
func (h *httpAuthClient) command(ctx context.Context, path string, body, result any) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(h.baseRoute + path)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result != nil {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp, nil
}

func (h *httpAuthClient) storeSessionToken(resp *resty.Response) {
	header := resp.Header().Get("Authorization")
	if header == "" {
		return
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpAuthClient.storeSessionToken").Msg("malformed session header")
		return
	}
	h.SetToken(token)
}
