// Package userclient calls the external identity service to verify that a
// user exists before an account is attached to them.
package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/finhub/accounts_service/internal/apperrors"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/middleware"
	"github.com/finhub/accounts_service/internal/utils/retry"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	policy     retry.Policy
}

// NewClient creates a verifier against the identity service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		policy:     retry.DefaultPolicy,
	}
}

var _ portssvc.UserVerifierSvc = (*Client)(nil)

// UserExists checks the identity service for the given user. Transient
// failures are retried; when the budget runs out the check degrades to
// (false, apperrors.ErrDependency) so callers reject rather than guess.
func (c *Client) UserExists(ctx context.Context, userID string) (bool, error) {
	endpoint := fmt.Sprintf("%s/users/%s/exists", c.baseURL, url.PathEscape(userID))

	var exists bool
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		var attemptErr error
		exists, attemptErr = c.checkOnce(ctx, endpoint)
		return attemptErr
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("user existence check degraded",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return false, fmt.Errorf("%w: user service unreachable", apperrors.ErrDependency)
	}
	return exists, nil
}

func (c *Client) checkOnce(ctx context.Context, endpoint string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build user service request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var exists bool
		if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil {
			return false, fmt.Errorf("failed to decode user service response: %w", err)
		}
		return exists, nil
	case http.StatusNotFound:
		// The identity service answers 404 for unknown users.
		return false, nil
	default:
		return false, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}
}
