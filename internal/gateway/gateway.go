// Package gateway is the single call surface for the remote finance API.
// It attaches the stored credential to every request, unwraps the response
// envelope, and reacts to authentication rejections; every view-level read
// and mutation in the application goes through it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"finboard/config"
	deliverycontext "finboard/internal/delivery/context"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// envelope is the uniform wrapper around every remote API response. The
// payload sits under data, keyed by resource name (e.g. {"user": {...}}).
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *remoteError    `json:"error"`
}

type remoteError struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Params holds dependencies for the Gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Creds  service.CredentialStore
	Logger *slog.Logger
}

// Gateway issues authenticated requests against the remote API. It never
// retries and never refreshes tokens: an authentication rejection clears the
// stored credential and surfaces as ErrAuthRejected, leaving re-login to the
// user.
type Gateway struct {
	baseURL *url.URL
	client  *http.Client
	creds   service.CredentialStore
	logger  *slog.Logger

	mu             sync.RWMutex
	onAuthRejected func(context.Context)
}

// New is the constructor for Gateway.
func New(params Params) (*Gateway, error) {
	baseURL, err := url.Parse(strings.TrimRight(params.Config.API.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse api base url %q", params.Config.API.BaseURL)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", params.Config.API.BaseURL)
	}

	timeout := params.Config.API.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		creds:   params.Creds,
		logger:  params.Logger,
	}, nil
}

// OnAuthRejected registers the callback invoked after the gateway clears the
// stored credential on an authentication rejection. The session service uses
// it to drop its in-memory identity so the next read observes the
// unauthenticated state.
func (g *Gateway) OnAuthRejected(fn func(context.Context)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onAuthRejected = fn
}

// Get issues a GET against path and decodes the envelope payload into out.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with body against path.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with body against path.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE against path.
func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	if !strings.HasPrefix(path, "/") {
		return errors.Errorf("gateway path %q must start with /", path)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL.String()+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the bearer header iff a credential is currently stored.
	cred, found, err := g.creds.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load credential")
	}
	if found && !cred.Empty() {
		req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.log(ctx).Warn("Remote API unreachable",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrAPIUnreachable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrAPIUnreachable, err.Error())
	}

	g.log(ctx).Debug("Remote API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		return g.handleAuthRejection(ctx, method, path)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(domainerrors.ErrDecodeFailed, "invalid envelope: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !env.Success {
		return remoteRejection(resp.StatusCode, &env)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return errors.Wrap(domainerrors.ErrDecodeFailed, "envelope has no data payload")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(domainerrors.ErrDecodeFailed, "decode data payload: %v", err)
	}

	return nil
}

// handleAuthRejection clears the stored credential before control returns to
// the caller, then notifies the session service. Ordering matters: by the
// time the caller sees ErrAuthRejected, the next gateway call is already
// guaranteed to go out without a bearer header.
func (g *Gateway) handleAuthRejection(ctx context.Context, method, path string) error {
	if err := g.creds.Clear(ctx); err != nil {
		g.log(ctx).Error("Failed to clear rejected credential", slog.Any("error", err))
	}

	g.mu.RLock()
	notify := g.onAuthRejected
	g.mu.RUnlock()
	if notify != nil {
		notify(ctx)
	}

	g.log(ctx).Info("Credential rejected by remote API, session cleared",
		slog.String("method", method), slog.String("path", path))

	return errors.Wrapf(domainerrors.ErrAuthRejected, "%s %s", method, path)
}

func remoteRejection(status int, env *envelope) error {
	message := env.Message
	if env.Error != nil && env.Error.Code != "" {
		message = env.Error.Code + ": " + message
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return errors.Wrapf(domainerrors.ErrRemoteRejected, "status %d: %s", status, message)
}

// log returns a request-scoped logger if available, otherwise falls back to the gateway's logger.
func (g *Gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}
