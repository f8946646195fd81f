package portal

import (
	"context"
	"errors"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and saves it in the token
// store so subsequent calls are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp tokenResp
	if err := c.post(ctx, "/auth/login", loginReq{Email: email, Password: password}, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return errors.New("Invalid email or password")
		}
		return normalizeError(err, "sign in")
	}
	return c.tokens.Save(resp.Token)
}

// Register creates a portal account. It does not sign in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	err := c.post(ctx, "/auth/register", registerReq{Username: username, Email: email, Password: password}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == duplicateKeyCode {
			return errors.New("Email already registered")
		}
		return normalizeError(err, "register")
	}
	return nil
}

// Logout discards the saved token.
func (c *Client) Logout() error { return c.tokens.Clear() }
