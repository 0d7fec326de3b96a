// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.Mailer
	notifier          service.AuthNotifier
	maxActiveSessions int
	resetURL          string
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Notifier         service.AuthNotifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}
	resetURL := ""
	if params.Config != nil && params.Config.Mail != nil {
		resetURL = params.Config.Mail.ResetURL
	}

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailer:            params.Mailer,
		notifier:          params.Notifier,
		maxActiveSessions: maxActiveSessions,
		resetURL:          resetURL,
		logger:            params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the account and its email credential in one transaction, then signs it in.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Session, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign up", slog.String("email", email))

	if err := srv.hasher.CheckStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet policy")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email: email,
		Roles: entity.Roles{entity.RoleMember},
	}
	if input.Username != nil {
		newUser.Username = strings.TrimSpace(*input.Username)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		authRepo := repoFactory.Credentials()
		userRepo := repoFactory.Users()

		_, findErr := authRepo.FindByProvider(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to check existing authentication")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			switch {
			case errors.Is(createErr, repository.ErrEmailTaken):
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			case errors.Is(createErr, repository.ErrUsernameTaken):
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username already taken")
			}

			return errors.Wrap(domainerrors.ErrUserCreationFailed, createErr.Error())
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if createErr := authRepo.Create(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign up transaction")
	}
	srv.log(ctx).Info("Account created", slog.Any("userID", newUser.ID))

	session, err := srv.startSession(ctx, newUser)
	if err != nil {
		return nil, err
	}
	srv.notify(entity.AuthEventSignedIn, newUser)

	return session, nil
}

// SignIn handles the process of authenticating a member with email and password.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign in", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign in failed")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Matches(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	user, err := srv.loadLoginUser(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user")
	}

	session, err := srv.startSession(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Member signed in", slog.Any("userID", user.ID))
	srv.notify(entity.AuthEventSignedIn, user)

	return session, nil
}

func (srv *accountService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.Credentials().FindByProvider(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

func (srv *accountService) loadLoginUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		var findUserErr error
		user, findUserErr = repoFactory.Users().FindByID(ctx, userID)
		if findUserErr != nil {
			return errors.Wrap(findUserErr, "failed to find user by id")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login user transaction")
	}

	return user, nil
}

// startSession issues a token pair for user and stores the refresh half.
func (srv *accountService) startSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	accessToken, refreshToken, err := srv.tokenService.IssuePair(user.ID, user.Roles.Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	return &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(srv.tokenService.AccessTTL()).UTC(),
		User:         user,
	}, nil
}

func (srv *accountService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if srv.maxActiveSessions > 0 {
		// Count and insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
			refreshRepo := repoFactory.RefreshTokens()

			activeSessions, err := refreshRepo.CountActive(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if activeSessions >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}

			return srv.storeRefreshToken(ctx, refreshRepo, userID, refreshToken)
		}); err != nil {
			return errors.Wrap(err, "failed to execute session transaction")
		}

		return nil
	}

	return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshToken)
}

func (srv *accountService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.DigestToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTTL()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// SignOut revokes the session behind a refresh token. Unknown tokens are ignored.
func (srv *accountService) SignOut(ctx context.Context, userID uuid.UUID, input *usecase.SignOutInput) error {
	srv.log(ctx).Info("Attempting to sign out", slog.Any("userID", userID))

	tokenHash := srv.tokenService.DigestToken(input.RefreshToken)

	stored, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash)
	switch {
	case err == nil:
		if stored.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "refresh token belongs to another account")
		}
	case errors.Is(err, repository.ErrRefreshTokenNotFound), errors.Is(err, repository.ErrRefreshTokenExpired):
		srv.log(ctx).Warn("Sign out with unknown refresh token", slog.Any("error", err))
	default:
		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully signed out")
	srv.notifier.Notify(entity.AuthEvent{
		Type:       entity.AuthEventSignedOut,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// RefreshSession issues a new access token. The refresh token itself is kept.
func (srv *accountService) RefreshSession(ctx context.Context, input *usecase.RefreshSessionInput) (*entity.Session, error) {
	srv.log(ctx).Info("Attempting to refresh session")

	claims, err := srv.tokenService.ParseToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "not a refresh token")
	}

	var (
		user           *entity.User
		newAccessToken string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		tokenHash := srv.tokenService.DigestToken(input.RefreshToken)

		if _, findErr := repoFactory.RefreshTokens().FindByHash(ctx, tokenHash); findErr != nil {
			if errors.IsAny(findErr, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, findErr.Error())
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}

		var findErr error
		user, findErr = repoFactory.Users().FindByID(ctx, claims.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		var genErr error
		newAccessToken, _, genErr = srv.tokenService.IssuePair(user.ID, user.Roles.Strings())
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh session transaction")
	}
	srv.notify(entity.AuthEventTokenRefreshed, user)

	return &entity.Session{
		AccessToken:  newAccessToken,
		RefreshToken: input.RefreshToken,
		ExpiresAt:    time.Now().Add(srv.tokenService.AccessTTL()).UTC(),
		User:         user,
	}, nil
}

func (srv *accountService) GetSession(ctx context.Context, accessToken string) (*usecase.SessionInfo, error) {
	claims, err := srv.tokenService.ParseToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, "not an access token")
	}

	user, err := srv.GetProfile(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	info := &usecase.SessionInfo{User: user}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return info, nil
}

func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	update := entity.ProfileUpdate{AvatarURL: input.AvatarURL}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		update.Username = &username
	}

	var (
		user    *entity.User
		changed bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		userRepo := repoFactory.Users()

		var findErr error
		user, findErr = userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		if changed = update.Apply(user); !changed {
			return nil
		}
		user.UpdatedAt = time.Now().UTC()

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			if errors.Is(updateErr, repository.ErrUsernameTaken) {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username already taken")
			}

			return errors.Wrap(domainerrors.ErrUserUpdateFailed, updateErr.Error())
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update profile transaction")
	}

	if changed {
		srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))
		srv.notify(entity.AuthEventUserUpdated, user)
	}

	return user, nil
}

// RequestPasswordReset mails a reset link to a known email and does nothing for an unknown one,
// so the response never reveals whether an account exists.
func (srv *accountService) RequestPasswordReset(ctx context.Context, input *usecase.RequestPasswordResetInput) error {
	email := normalizeEmail(input.Email)

	authRecord, err := srv.authRepo.FindByProvider(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find authentication")
	}

	user, err := srv.GetProfile(ctx, authRecord.UserID)
	if err != nil {
		return err
	}

	token, err := srv.tokenService.IssueResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	mail := service.PasswordResetMail{
		ToEmail:  user.Email,
		ToName:   user.Username,
		ResetURL: srv.resetLink(token),
	}
	if err := srv.mailer.SendPasswordReset(ctx, mail); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}
	srv.notify(entity.AuthEventPasswordRecovery, user)

	return nil
}

func (srv *accountService) resetLink(token string) string {
	sep := "?"
	if strings.Contains(srv.resetURL, "?") {
		sep = "&"
	}

	return srv.resetURL + sep + "token=" + url.QueryEscape(token)
}

// ResetPassword replaces the password and revokes every session of the account.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ParseToken(input.Token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeReset {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "not a reset token")
	}

	if err := srv.hasher.CheckStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "password does not meet policy")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.IdentityTx) error {
		authRecord, findErr := repoFactory.Credentials().FindByUser(ctx, claims.UserID, entity.ProviderTypeEmail)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "account has no password")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		if updateErr := repoFactory.Credentials().UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update password")
		}

		if deleteErr := repoFactory.RefreshTokens().DeleteByUser(ctx, claims.UserID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute reset password transaction")
	}
	srv.log(ctx).Info("Password reset, all sessions revoked", slog.Any("userID", claims.UserID))
	srv.notifier.Notify(entity.AuthEvent{
		Type:       entity.AuthEventSignedOut,
		UserID:     claims.UserID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

func (srv *accountService) OnAuthStateChange(userID uuid.UUID, listener service.AuthListener) func() {
	return srv.notifier.Subscribe(userID, listener)
}

func (srv *accountService) notify(eventType entity.AuthEventType, user *entity.User) {
	srv.notifier.Notify(entity.AuthEvent{
		Type:       eventType,
		UserID:     user.ID,
		Username:   user.Username,
		OccurredAt: time.Now().UTC(),
	})
}
