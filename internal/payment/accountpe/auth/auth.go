package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"paylink/internal/payment/accountpe"
	httpClient "paylink/internal/utility/http"
)

// ErrAuthentication means no token was obtained.
var ErrAuthentication = errors.New("accountpe: authentication failed")

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Authenticator struct {
	client      *httpClient.Client
	baseURL     string
	credentials accountpe.Credentials
}

func NewAuthenticator(client *httpClient.Client, baseURL string, credentials accountpe.Credentials) *Authenticator {
	return &Authenticator{
		client:      client,
		baseURL:     baseURL,
		credentials: credentials,
	}
}

// Token issues one auth request. Any non-200 answer, transport fault or
// empty token is reported as ErrAuthentication.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	payload := tokenRequest{
		Email:    a.credentials.Email,
		Password: a.credentials.Password,
	}

	response, err := a.client.PostJSON(ctx, accountpe.Endpoint(a.baseURL, accountpe.AuthEndPoint), payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(response, &tokenResp); err != nil {
		return "", fmt.Errorf("%w: failed to unmarshal response: %w", ErrAuthentication, err)
	}

	if tokenResp.Token == "" {
		return "", fmt.Errorf("%w: response carries no token", ErrAuthentication)
	}

	return tokenResp.Token, nil
}
