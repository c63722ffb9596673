package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/SISDRUG/bankoffice/internal/common"
	"github.com/SISDRUG/bankoffice/internal/geo"
	"github.com/SISDRUG/bankoffice/internal/logging"
)

// RemoteError is an HTTP-level failure reported by the admin API.
// Message carries the server-provided text when the error body could be
// decoded, otherwise the HTTP status text.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (%d): %s", e.StatusCode, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == common.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == common.ErrUnauthorized
	}
	return false
}

// HTTPGateway implements Gateway over the admin REST API.
type HTTPGateway struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
	log     logging.Logger
}

// NewHTTPGateway constructs a gateway bound to the given API base URL
// (including the /rest/admin-ui prefix).
func NewHTTPGateway(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
		log:     log.With("component", "gateway"),
	}
}

// do performs an authenticated JSON request and returns the response body.
// Every request carries a fresh X-Request-Id for tracing.
func (g *HTTPGateway) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	token, err := g.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring token: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	g.log.Debug(ctx, "gateway request", "method", method, "path", path, "request_id", requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &RemoteError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &errBody); err == nil && errBody.Message != "" {
			remote.Message = errBody.Message
		}
		g.log.Warn(ctx, "gateway request failed",
			"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return nil, remote
	}

	return data, nil
}

func doJSON[T any](g *HTTPGateway, ctx context.Context, method, path string, body any) (*T, error) {
	data, err := g.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return &out, nil
}

func doList[T any](g *HTTPGateway, ctx context.Context, path string) ([]T, error) {
	data, err := g.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](data)
	if err != nil {
		return nil, fmt.Errorf("decoding GET %s response: %w", path, err)
	}
	return items, nil
}

func (g *HTTPGateway) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return doJSON[User](g, ctx, http.MethodPost, "/users", req)
}

func (g *HTTPGateway) CreateLogin(ctx context.Context, req CreateLoginRequest) (*LoginDetails, error) {
	return doJSON[LoginDetails](g, ctx, http.MethodPost, "/loginDetails", req)
}

func (g *HTTPGateway) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*Credential, error) {
	return doJSON[Credential](g, ctx, http.MethodPost, "/credentials", req)
}

func (g *HTTPGateway) UpdateUser(ctx context.Context, id int64, req CreateUserRequest) (*User, error) {
	return doJSON[User](g, ctx, http.MethodPut, "/users/"+formatID(id), req)
}

func (g *HTTPGateway) UpdateLoginDetails(ctx context.Context, id int64, req UpdateLoginRequest) (*LoginDetails, error) {
	return doJSON[LoginDetails](g, ctx, http.MethodPut, "/loginDetails/"+formatID(id), req)
}

func (g *HTTPGateway) UpdateCredential(ctx context.Context, id int64, req UpdateCredentialRequest) (*Credential, error) {
	return doJSON[Credential](g, ctx, http.MethodPut, "/credentials/"+formatID(id), req)
}

func (g *HTTPGateway) DeleteLogin(ctx context.Context, id int64) error {
	_, err := g.do(ctx, http.MethodDelete, "/loginDetails/"+formatID(id), nil)
	return err
}

func (g *HTTPGateway) ListRoles(ctx context.Context) ([]Role, error) {
	return doList[Role](g, ctx, "/roles")
}

func (g *HTTPGateway) ListUsers(ctx context.Context) ([]User, error) {
	return doList[User](g, ctx, "/users")
}

func (g *HTTPGateway) SearchUsers(ctx context.Context, search UserSearch) ([]User, error) {
	q := url.Values{}
	if search.FirstName != "" {
		q.Set("name", search.FirstName)
	}
	if search.LastName != "" {
		q.Set("surname", search.LastName)
	}
	if search.Phone != "" {
		q.Set("contactPhone", search.Phone)
	}
	if search.Email != "" {
		q.Set("email", search.Email)
	}
	path := "/users/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return doList[User](g, ctx, path)
}

func (g *HTTPGateway) GetUser(ctx context.Context, id int64) (*User, error) {
	return doJSON[User](g, ctx, http.MethodGet, "/users/"+formatID(id), nil)
}

func (g *HTTPGateway) GetLoginByUserID(ctx context.Context, userID int64) (*LoginDetails, error) {
	return doJSON[LoginDetails](g, ctx, http.MethodGet, "/loginDetails/byUser/"+formatID(userID), nil)
}

func (g *HTTPGateway) GetCredentialByLoginID(ctx context.Context, loginID int64) (*Credential, error) {
	return doJSON[Credential](g, ctx, http.MethodGet, "/credentials/byLogin/"+formatID(loginID), nil)
}

func (g *HTTPGateway) ListAccounts(ctx context.Context) ([]Account, error) {
	return doList[Account](g, ctx, "/bankAccounts")
}

func (g *HTTPGateway) ListAccountsByUserID(ctx context.Context, userID int64) ([]Account, error) {
	return doList[Account](g, ctx, "/bankAccounts/byUser/"+formatID(userID))
}

func (g *HTTPGateway) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	return doJSON[Account](g, ctx, http.MethodPost, "/bankAccounts", req)
}

func (g *HTTPGateway) DeleteAccount(ctx context.Context, id int64) error {
	_, err := g.do(ctx, http.MethodDelete, "/bankAccounts/"+formatID(id), nil)
	return err
}

func (g *HTTPGateway) ListCards(ctx context.Context) ([]Card, error) {
	return doList[Card](g, ctx, "/cards")
}

func (g *HTTPGateway) CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error) {
	return doJSON[Card](g, ctx, http.MethodPost, "/cards", req)
}

func (g *HTTPGateway) ListOperations(ctx context.Context) ([]Operation, error) {
	return doList[Operation](g, ctx, "/operations")
}

func (g *HTTPGateway) CreateOperation(ctx context.Context, req CreateOperationRequest) (*Operation, error) {
	return doJSON[Operation](g, ctx, http.MethodPost, "/operations", req)
}

func (g *HTTPGateway) ListCurrencies(ctx context.Context) ([]Currency, error) {
	return doList[Currency](g, ctx, "/currencies?page=0&size=20")
}

func (g *HTTPGateway) NearbyLocations(ctx context.Context, lat, lon, radiusMeters float64) ([]geo.Location, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusMeters, 'f', -1, 64))
	return doList[geo.Location](g, ctx, "/locations/nearby?"+q.Encode())
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

var _ Gateway = (*HTTPGateway)(nil)

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound
}
