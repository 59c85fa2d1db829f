package fintrack

import (
	"context"
	"errors"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. The token is returned but
// not installed on the client; call SetToken to use it.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}

	if resp.AccessToken == "" {
		return "", errors.New("login response carried no access token")
	}

	return resp.AccessToken, nil
}

// RegisterRequest is the payload for creating an account. PhoneNumber must
// already carry the country code prefix and BirthDate must be YYYY-MM-DD.
type RegisterRequest struct {
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Username    string `json:"username"`
}

type registerResponse struct {
	Status statusFlag `json:"status"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	var resp registerResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return err
	}

	if !bool(resp.Status) {
		return errors.New("registration rejected by the API")
	}

	return nil
}
