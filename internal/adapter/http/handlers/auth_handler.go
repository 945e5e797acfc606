package handlers

import (
	"errors"
	"net/http"

	request "cardapio_digital/internal/adapter/http/dto/request"
	response "cardapio_digital/internal/adapter/http/dto/response"
	"cardapio_digital/internal/adapter/http/middlewares"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	msgVerificationCodeSent = "Código de verificação enviado para o seu e-mail."
	msgLoggedOut            = "Sessão encerrada."
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida.", http.StatusBadRequest)
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

type registerResponse struct {
	Message string                `json:"message"`
	User    response.UserResponse `json:"user"`
}

// Register godoc
// @Summary      Register a customer account
// @Description  Stores an unverified account and sends a 6-digit verification code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.CredentialsRequest  true  "Credentials"
// @Success      201  {object}  handlers.registerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, registerResponse{Message: msgVerificationCodeSent, User: response.FromUser(user)})
}

// ResendCode godoc
// @Summary      Send a new verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.ResendCodeRequest  true  "Email"
// @Success      200  {object}  response.MessageResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /auth/resend-code [post]
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var payload request.ResendCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SendVerificationCode(c.Request.Context(), payload.Email); err != nil {
		h.fail(c, "resend-code", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msgVerificationCodeSent})
}

// Verify godoc
// @Summary      Verify an email and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.VerifyEmailRequest  true  "Email and code"
// @Success      200  {object}  response.AuthResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var payload request.VerifyEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.VerifyEmail(c.Request.Context(), payload.Email, payload.Code)
	if err != nil {
		h.fail(c, "verify", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.CredentialsRequest  true  "Credentials"
// @Success      200  {object}  response.AuthResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.fail(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.MessageResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middlewares.BearerToken(c)); err != nil {
		h.fail(c, "logout", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msgLoggedOut})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.UserResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context(), middlewares.BearerToken(c))
	if err != nil {
		h.fail(c, "me", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) fail(c *gin.Context, action string, err error) {
	appErr := mapAuthError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[auth][handler] %s failed err=%v", action, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Por favor, informe um e-mail válido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "A senha deve ter pelo menos 6 caracteres.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Este e-mail já está registrado.", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailAlreadyVerified):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_VERIFIED", "Este e-mail já foi verificado e está em uso.", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidVerificationCode):
		return pkg.NewDomainErrorSimple("INVALID_VERIFICATION_CODE", "Código de verificação inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVerificationLocked):
		return pkg.NewDomainErrorSimple("VERIFICATION_LOCKED", "Muitas tentativas inválidas. Solicite um novo código de verificação.", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrVerificationSendFailed):
		return pkg.NewDomainError("VERIFICATION_SEND_FAILED", "Não foi possível enviar o e-mail de verificação. Tente novamente.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "E-mail ou senha inválidos.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountNotVerified):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_VERIFIED", "Sua conta ainda não foi verificada. Por favor, verifique seu e-mail.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sessão inválida ou expirada.", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
