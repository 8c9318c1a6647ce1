package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the flat success payload of the login endpoint. The id is
// numeric on the wire but stored as a string in the session.
type loginResponse struct {
	Jwt      string      `json:"jwt"`
	UserName string      `json:"userName"`
	Email    string      `json:"email"`
	ID       json.Number `json:"id"`
	Role     string      `json:"role"`
	UserID   string      `json:"userId"`
}

// Authenticate implements session.Authenticator: it exchanges credentials for
// a session at the auth endpoint. Role enforcement stays with the session
// store; this call only reports what the backend returned.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*session.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/user/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return &session.Session{
		ID:     resp.ID.String(),
		UserID: resp.UserID,
		Name:   resp.UserName,
		Email:  resp.Email,
		Role:   resp.Role,
		Token:  resp.Jwt,
	}, nil
}

// ChangePassword updates the logged-in admin's password.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return c.do(ctx, http.MethodPut, "/api/v1/user/password", nil, change, nil)
}
