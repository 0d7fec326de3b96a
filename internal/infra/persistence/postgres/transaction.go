package postgres

import (
	"context"

	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) Users() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) Credentials() repository.AuthRepository {
	return NewAuthRepository(r.tx)
}

func (r txRepositories) RefreshTokens() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

// Execute commits when fn returns nil and rolls back otherwise, including on
// panic. Errors from fn come back unchanged; failures to begin or commit are
// reported as ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.IdentityTx) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.Join(domainerrors.ErrTransactionFailed, errors.WithStack(err))
	}

	return nil
}
