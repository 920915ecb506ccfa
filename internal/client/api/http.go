package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// RESTClient implements Gateway over the backend's JSON/HTTP contract.
//
// It enforces no timeouts and performs no retries: a hung request is bounded
// only by the caller's context, and a failed request is terminal for that
// user action.
type RESTClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

func NewRESTClient(baseURL string, creds CredentialSource, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		creds:   creds,
		log:     log,
	}
}

// serverMessage is the error body shape the backend sends on non-2xx
// responses. When both fields are present, message wins.
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one HTTP request and maps the result onto the canonical outcome
// taxonomy. A nil out discards the response body after status checks.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, requiresAuth bool, out any) error {
	if requiresAuth && c.creds.IsDemo() {
		return fmt.Errorf("%w (%s %s)", ErrDemoModeDisabled, method, path)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: cannot connect to backend at %s", ErrNetworkUnreachable, c.baseURL)
	}
	defer resp.Body.Close()

	return c.decode(ctx, resp, out)
}

// decorate attaches the bearer credential (if any) and a correlation id.
// Demo sessions expose an empty token, so the header is never set for them.
func (c *RESTClient) decorate(req *http.Request) {
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
}

// decode classifies the response status and, for 2xx, unmarshals the body
// into out. Classification precedence: 5xx/0 before 404 before 401; all
// remaining non-2xx become server errors carrying the backend's message.
func (c *RESTClient) decode(ctx context.Context, resp *http.Response, out any) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponseBody, err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Warn(ctx, "undecodable success body", "status", resp.StatusCode, "error", err)
			return fmt.Errorf("%w: %v", ErrInvalidResponseBody, err)
		}
		return nil
	}

	data, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == 0:
		return fmt.Errorf("%w: backend may be down (%s)", ErrServerError, resp.Status)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: no such route %s", ErrNotFound, resp.Request.URL.Path)
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: authentication failed", ErrUnauthorized)
	default:
		var sm serverMessage
		_ = json.Unmarshal(data, &sm)
		msg := sm.Message
		if msg == "" {
			msg = sm.Error
		}
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", ErrServerError, msg)
	}
}

type authResponse struct {
	Token string          `json:"token"`
	User  models.WireUser `json:"user"`
}

func (c *RESTClient) Signup(ctx context.Context, req SignupRequest) (string, models.User, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return "", models.User{}, fmt.Errorf("%w: full name, email and password are required", ErrValidation)
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, false, &resp); err != nil {
		return "", models.User{}, err
	}
	if resp.Token == "" {
		return "", models.User{}, fmt.Errorf("%w: missing token in signup response", ErrInvalidResponseBody)
	}
	return resp.Token, resp.User.Canonical(), nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	if email == "" || password == "" {
		return "", models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, false, &resp); err != nil {
		return "", models.User{}, err
	}
	if resp.Token == "" {
		return "", models.User{}, fmt.Errorf("%w: missing token in login response", ErrInvalidResponseBody)
	}
	return resp.Token, resp.User.Canonical(), nil
}

func (c *RESTClient) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, false, nil)
}

func (c *RESTClient) ResetPassword(ctx context.Context, resetToken, password string) error {
	if resetToken == "" || password == "" {
		return fmt.Errorf("%w: reset token and password are required", ErrValidation)
	}
	path := "/api/auth/reset-password/" + url.PathEscape(resetToken)
	return c.do(ctx, http.MethodPost, path, map[string]string{"password": password}, false, nil)
}

func (c *RESTClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new passwords are required", ErrValidation)
	}
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", body, true, nil)
}

func (c *RESTClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var resp models.WireUser
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", update, true, &resp); err != nil {
		return models.User{}, err
	}
	return resp.Canonical(), nil
}

// UploadProfilePicture posts the image as multipart form data under the
// field name the backend expects ("profilePhoto") and returns the stored
// image URL.
func (c *RESTClient) UploadProfilePicture(ctx context.Context, filename string, image io.Reader) (string, error) {
	if c.creds.IsDemo() {
		return "", fmt.Errorf("%w (POST /api/users/profile-picture)", ErrDemoModeDisabled)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("profilePhoto", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/profile-picture", &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: cannot connect to backend at %s", ErrNetworkUnreachable, c.baseURL)
	}
	defer resp.Body.Close()

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.decode(ctx, resp, &out); err != nil {
		return "", err
	}
	if out.ImageURL == "" {
		return "", fmt.Errorf("%w: missing imageUrl in upload response", ErrInvalidResponseBody)
	}
	return out.ImageURL, nil
}

func (c *RESTClient) SearchUsers(ctx context.Context, skill string) ([]models.User, error) {
	path := "/api/users"
	if skill != "" {
		path += "?skill=" + url.QueryEscape(skill)
	}

	var resp struct {
		Users []models.WireUser `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(resp.Users))
	for _, w := range resp.Users {
		users = append(users, w.Canonical())
	}
	return users, nil
}

func (c *RESTClient) SendSwapRequest(ctx context.Context, req models.NewSwapRequest) (models.SwapRequest, error) {
	if req.ToUserID == "" || req.OfferedSkill == "" || req.WantedSkill == "" {
		return models.SwapRequest{}, fmt.Errorf("%w: recipient, offered skill and wanted skill are required", ErrValidation)
	}

	var resp models.WireSwapRequest
	if err := c.do(ctx, http.MethodPost, "/api/swap/request", req, true, &resp); err != nil {
		return models.SwapRequest{}, err
	}
	return resp.Canonical(), nil
}

func (c *RESTClient) SwapRequests(ctx context.Context) ([]models.SwapRequest, error) {
	var resp struct {
		Requests []models.WireSwapRequest `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/swap/requests", nil, true, &resp); err != nil {
		return nil, err
	}

	requests := make([]models.SwapRequest, 0, len(resp.Requests))
	for _, w := range resp.Requests {
		requests = append(requests, w.Canonical())
	}
	return requests, nil
}

func (c *RESTClient) UpdateSwapRequestStatus(ctx context.Context, requestID, status string) (models.SwapRequest, error) {
	if status != models.SwapStatusAccepted && status != models.SwapStatusRejected {
		return models.SwapRequest{}, fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.SwapStatusAccepted, models.SwapStatusRejected)
	}

	path := "/api/swap/requests/" + url.PathEscape(requestID)
	var resp models.WireSwapRequest
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, true, &resp); err != nil {
		return models.SwapRequest{}, err
	}
	return resp.Canonical(), nil
}

func (c *RESTClient) DeleteSwapRequest(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("%w: request id is required", ErrValidation)
	}
	return c.do(ctx, http.MethodDelete, "/api/swap/requests/"+url.PathEscape(requestID), nil, true, nil)
}

func (c *RESTClient) SubmitFeedback(ctx context.Context, fb models.NewFeedback) (models.Feedback, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return models.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if fb.ToUserID == "" || fb.SwapRequestID == "" {
		return models.Feedback{}, fmt.Errorf("%w: recipient and swap request are required", ErrValidation)
	}

	var resp models.WireFeedback
	if err := c.do(ctx, http.MethodPost, "/api/feedback", fb, true, &resp); err != nil {
		return models.Feedback{}, err
	}
	return resp.Canonical(), nil
}

func (c *RESTClient) Feedback(ctx context.Context) ([]models.Feedback, error) {
	var resp struct {
		Feedback []models.WireFeedback `json:"feedback"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/feedback", nil, true, &resp); err != nil {
		return nil, err
	}

	feedback := make([]models.Feedback, 0, len(resp.Feedback))
	for _, w := range resp.Feedback {
		feedback = append(feedback, w.Canonical())
	}
	return feedback, nil
}

// Ping probes reachability with a HEAD request against the base URL. The
// contract defines no health endpoint, so any HTTP response at all (even a
// 404) proves the backend is up; only transport failures count as down.
func (c *RESTClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: cannot connect to backend at %s", ErrNetworkUnreachable, c.baseURL)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
