package backend

import (
	"context"
	"net/http"
	"net/url"
)

// Token is the bearer credential issued by the backend on successful
// login or registration.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the backend. The backend expects OAuth2-style
// url-encoded form data on this endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token Token
	err := c.do(ctx, http.MethodPost, "/login", "", "application/x-www-form-urlencoded", []byte(form.Encode()), &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates a new account. Unlike login, this endpoint takes JSON.
func (c *Client) Register(ctx context.Context, username, password string) (*Token, error) {
	var token Token
	err := c.postJSON(ctx, "/register", "", registerRequest{Username: username, Password: password}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}
