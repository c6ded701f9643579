package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/types"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
	"github.com/Shivansh-2508/PGT-Portal/internal/middleware"
	"github.com/Shivansh-2508/PGT-Portal/pkg/logger"
)

// APIClient wraps Hertz Client for HTTP communication with the portal API
type APIClient struct {
	client  *client.Client
	server  string
	timeout time.Duration
}

// NewAPIClient creates a new API client. timeout bounds each request.
func NewAPIClient(server string, timeout time.Duration) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	c.Use(middleware.Logger())

	return &APIClient{
		client:  c,
		server:  normalizedServer,
		timeout: timeout,
	}, nil
}

// Server returns the normalized server base URL
func (c *APIClient) Server() string {
	return c.server
}

// normalizeServerURL ensures a scheme and strips the trailing slash. A path
// prefix (for example /api) is kept.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, strings.TrimRight(u.Path, "/")), nil
}

// Login posts the credentials to /auth/login/{role}. Any 2xx JSON object is
// returned as-is; everything else is a *domain.RequestError.
func (c *APIClient) Login(ctx context.Context, role entity.Role, username, password string) (map[string]any, error) {
	log := logger.FromContext(ctx).With("role", string(role))

	bodyBytes, err := sonic.Marshal(types.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + fmt.Sprintf(endpointLogin, url.PathEscape(string(role))))
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("Accept", "application/json")
	req.SetBody(bodyBytes)
	req.SetOptions(config.WithRequestTimeout(c.timeout))

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, &domain.RequestError{Err: err}
	}

	statusCode := resp.StatusCode()
	// resp is released on return; keep our own copy of the body
	body := append([]byte(nil), resp.Body()...)

	if statusCode < 200 || statusCode >= 300 {
		return nil, &domain.RequestError{StatusCode: statusCode, Body: body}
	}

	var payload map[string]any
	if err := sonic.Unmarshal(body, &payload); err != nil || payload == nil {
		if err == nil {
			err = fmt.Errorf("response is not a JSON object")
		}
		logger.WithError(log, err).Warn("undecodable login response", slog.Int("status", statusCode))
		return nil, &domain.RequestError{
			StatusCode: statusCode,
			Body:       body,
			Err:        fmt.Errorf("failed to unmarshal response: %w", err),
		}
	}

	return payload, nil
}
