// Package gateway is the client for the admin REST API. It owns request
// authentication (bearer tokens from the injected token source) and exposes
// typed CRUD operations for the back-office resources: users, login details,
// role credentials, accounts, cards, operations, currencies and locations.
package gateway

import (
	"context"

	"github.com/SISDRUG/bankoffice/internal/geo"
)

// Gateway defines the remote operations the client layers depend on.
//
// All methods honor context cancellation/timeouts. Failures are returned as
// *RemoteError (HTTP-level failures with a server message) or as transport
// errors from the underlying http.Client.
type Gateway interface {
	// Provisioning workflow operations.
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	CreateLogin(ctx context.Context, req CreateLoginRequest) (*LoginDetails, error)
	CreateCredential(ctx context.Context, req CreateCredentialRequest) (*Credential, error)
	UpdateUser(ctx context.Context, id int64, req CreateUserRequest) (*User, error)
	UpdateLoginDetails(ctx context.Context, id int64, req UpdateLoginRequest) (*LoginDetails, error)
	UpdateCredential(ctx context.Context, id int64, req UpdateCredentialRequest) (*Credential, error)
	DeleteLogin(ctx context.Context, id int64) error
	ListRoles(ctx context.Context) ([]Role, error)

	// User directory.
	ListUsers(ctx context.Context) ([]User, error)
	SearchUsers(ctx context.Context, search UserSearch) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetLoginByUserID(ctx context.Context, userID int64) (*LoginDetails, error)
	GetCredentialByLoginID(ctx context.Context, loginID int64) (*Credential, error)

	// Accounts and cards.
	ListAccounts(ctx context.Context) ([]Account, error)
	ListAccountsByUserID(ctx context.Context, userID int64) ([]Account, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListCards(ctx context.Context) ([]Card, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error)

	// Operations (transfers etc.).
	ListOperations(ctx context.Context) ([]Operation, error)
	CreateOperation(ctx context.Context, req CreateOperationRequest) (*Operation, error)

	// Reference data.
	ListCurrencies(ctx context.Context) ([]Currency, error)
	NearbyLocations(ctx context.Context, lat, lon, radiusMeters float64) ([]geo.Location, error)
}

// TokenSource supplies the bearer token attached to every request.
// The auth service implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
