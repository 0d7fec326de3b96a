package repository

import "context"

// TransactionManager runs multi-step identity changes atomically: sign up
// writes a user and its credential, a password reset rewrites the
// credential and revokes every session.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise,
	// returning fn's error unchanged.
	Execute(ctx context.Context, fn func(tx IdentityTx) error) error
}

// IdentityTx hands out repositories bound to one open transaction.
type IdentityTx interface {
	Users() UserRepository
	Credentials() AuthRepository
	RefreshTokens() RefreshTokenRepository
}
