package gateway

import "encoding/json"

// User is the identity record managed by the back office. The admin API uses
// name/surname/contactPhone on the wire; the client keeps the form-facing
// names.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"name"`
	LastName    string `json:"surname"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"contactPhone"`
	Address     string `json:"address"`
	Active      bool   `json:"active"`
	Verified    bool   `json:"verified"`
}

// LoginDetails is the authentication identity bound 1:1 to a User.
// Password is write-only and never returned by the API.
type LoginDetails struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Role is read-only reference data.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"role"`
}

// Credential is the authorization binding between a login and a role.
// The API nests the login details under the "email" key.
type Credential struct {
	ID           int64        `json:"id"`
	Role         Role         `json:"role"`
	LoginDetails LoginDetails `json:"email"`
	UserID       int64        `json:"userId"`
}

type Account struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

type Card struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Number   string `json:"number"`
	CardType string `json:"cardType"`
	Status   string `json:"status"`
}

type Operation struct {
	ID               int64   `json:"id"`
	CardID           int64   `json:"cardId"`
	Value            float64 `json:"value"`
	RecipientDetails string  `json:"recipientDetails"`
	Description      string  `json:"description"`
	OperationType    string  `json:"operationType"`
	Status           string  `json:"status"`
}

// Currency is a rate-table row. Rates are quoted against the base currency.
type Currency struct {
	ID           int64   `json:"id"`
	Abbreviation string  `json:"curAbbreviation"`
	Name         string  `json:"curName"`
	Rate         float64 `json:"curRate"`
	Scale        int64   `json:"curScale"`
}

type CreateUserRequest struct {
	FirstName   string `json:"name"`
	LastName    string `json:"surname"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"contactPhone"`
	Address     string `json:"address"`
}

type CreateLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   int64  `json:"userId"`
}

type CreateCredentialRequest struct {
	UserID         int64 `json:"userId"`
	LoginDetailsID int64 `json:"loginDetailsId"`
	RoleID         int64 `json:"roleId"`
}

type UpdateLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UpdateCredentialRequest uses snake_case keys; the credential update
// endpoint predates the camelCase convention of the rest of the API.
type UpdateCredentialRequest struct {
	LoginDetailsID int64 `json:"login_details_id"`
	RoleID         int64 `json:"role_id"`
}

type CreateAccountRequest struct {
	UserID       int64  `json:"userId"`
	CurrencyID   int64  `json:"currencyId"`
	Type         string `json:"type"`
	CredentialID int64  `json:"credentialId,omitempty"`
}

type CreateCardRequest struct {
	UserID   int64  `json:"userId"`
	CardType string `json:"cardType"`
}

type CreateOperationRequest struct {
	CardID           int64   `json:"cardId"`
	Value            float64 `json:"value"`
	RecipientDetails string  `json:"recipientDetails"`
	Description      string  `json:"description"`
	OperationType    string  `json:"operationType"`
	Status           string  `json:"status"`
}

// UserSearch holds optional filters for the user search endpoint.
// Empty fields are omitted from the query string.
type UserSearch struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// page mirrors the Spring-style envelope some list endpoints use. decodeList
// accepts either a bare JSON array or this wrapper.
type page[T any] struct {
	Content []T `json:"content"`
}

func decodeList[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var p page[T]
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p.Content, nil
}
