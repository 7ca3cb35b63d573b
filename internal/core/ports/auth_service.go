package ports

import "context"

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	// Login returns the opaque session token issued for the credentials.
	Login(ctx context.Context, email, password string) (string, error)
}
