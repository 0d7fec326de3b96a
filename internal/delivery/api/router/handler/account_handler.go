package handler

import (
	"log/slog"
	"net/http"

	"hive/internal/delivery/api/middleware"
	"hive/internal/delivery/api/response"
	"hive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	EventHub  *EventHub
	Logger    *slog.Logger
}

// AccountHandler serves sign up, sign in, sessions and profiles.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	eventHub  *EventHub
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		eventHub:  params.EventHub,
		logger:    params.Logger,
	}
}

// SignUp handles account creation
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.accountUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// SignIn handles email and password sign in
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req usecase.SignInInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.accountUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// RefreshSession exchanges a refresh token for a new access token
func (h *AccountHandler) RefreshSession(c echo.Context) error {
	var req usecase.RefreshSessionInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.accountUC.RefreshSession(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// SignOut revokes the session of the posted refresh token
func (h *AccountHandler) SignOut(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.SignOutInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.accountUC.SignOut(c.Request().Context(), userID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// GetSession describes the session of the presented access token
func (h *AccountHandler) GetSession(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		token = c.QueryParam("access_token")
	}

	session, err := h.accountUC.GetSession(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GetProfile returns the profile of the caller
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the username or avatar of the caller
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.UpdateProfileInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RequestPasswordReset mails a reset link. The answer is the same for unknown emails.
func (h *AccountHandler) RequestPasswordReset(c echo.Context) error {
	var req usecase.RequestPasswordResetInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.accountUC.RequestPasswordReset(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message": "If the email is registered a reset link has been sent",
	})
}

// ResetPassword sets a new password from a reset link token
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req usecase.ResetPasswordInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated, please sign in again"})
}

// Events upgrades to a websocket streaming the auth state changes of the caller.
func (h *AccountHandler) Events(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	return h.eventHub.Stream(c, userID, h.accountUC.OnAuthStateChange)
}
