package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail            = errors.New("invalid email")
	ErrWeakPassword            = errors.New("password too short")
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrEmailAlreadyVerified    = errors.New("email already verified")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationLocked      = errors.New("too many invalid verification attempts")
	ErrVerificationSendFailed  = errors.New("failed to send verification code")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountNotVerified      = errors.New("account not verified")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// MaxVerificationAttempts is the number of wrong codes a pending account
// accepts before the code is discarded and a new one must be requested.
const MaxVerificationAttempts = 5

// AuthResult is the authenticated user and the session opened for it.
type AuthResult struct {
	User    entities.User
	Session entities.Session
}

// IAuthUseCase manages accounts and opaque bearer sessions.
//
// Flow: Register -> (code sent) -> VerifyEmail -> session. Login requires a
// verified account. Admin accounts are provisioned by BootstrapAdmin.
type IAuthUseCase interface {
	Register(ctx context.Context, email, password string) (entities.User, error)
	SendVerificationCode(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, email, code string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, token string) error
	IsAdmin(ctx context.Context, token string) (entities.Session, error)
	Me(ctx context.Context, token string) (entities.User, error)
	BootstrapAdmin(ctx context.Context, email, password string) error
}

type AuthUseCase struct {
	users      interfaces.IUserRepository
	sessions   interfaces.ISessionRepository
	sender     interfaces.IVerificationSender
	sessionTTL time.Duration

	now        func() time.Time
	newCode    func() (string, error)
	bcryptCost int
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionRepository, sender interfaces.IVerificationSender, sessionTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		sessions:   sessions,
		sender:     sender,
		sessionTTL: sessionTTL,
		now:        time.Now,
		newCode:    generateVerificationCode,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password string) (entities.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.User{}, err
	}
	if len(password) < MinPasswordLength {
		return entities.User{}, ErrWeakPassword
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" && existing.IsVerified {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := existing
	if user.ID == "" {
		user = entities.User{
			ID:        uuid.NewString(),
			Email:     email,
			Role:      entities.UserRoleCustomer,
			CreatedAt: u.now().UTC(),
		}
	}
	user.PasswordHash = string(hash)

	if err := u.issueCode(ctx, &user); err != nil {
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] registered email=%s user_id=%s", email, user.ID)
	return user, nil
}

func (u *AuthUseCase) SendVerificationCode(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrEmailAlreadyVerified
	}
	return u.issueCode(ctx, &user)
}

// issueCode stores a fresh hashed code on user and sends the plain one.
func (u *AuthUseCase) issueCode(ctx context.Context, user *entities.User) error {
	code, err := u.newCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}
	user.VerificationCodeHash = string(hash)
	user.VerificationAttempts = 0
	if err := u.users.Put(ctx, *user); err != nil {
		return err
	}
	if err := u.sender.SendVerificationCode(ctx, user.Email, code); err != nil {
		log.Printf("[auth][usecase] send code failed email=%s err=%v", user.Email, err)
		return fmt.Errorf("%w: %v", ErrVerificationSendFailed, err)
	}
	return nil
}

func (u *AuthUseCase) VerifyEmail(ctx context.Context, email, code string) (AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return AuthResult{}, err
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" || user.IsVerified || user.VerificationCodeHash == "" {
		return AuthResult{}, ErrInvalidVerificationCode
	}
	if bcrypt.CompareHashAndPassword([]byte(user.VerificationCodeHash), []byte(strings.TrimSpace(code))) != nil {
		return AuthResult{}, u.recordFailedVerification(ctx, user)
	}

	user.IsVerified = true
	user.VerificationCodeHash = ""
	user.VerificationAttempts = 0
	if err := u.users.Put(ctx, user); err != nil {
		return AuthResult{}, err
	}
	return u.openSession(ctx, user)
}

// recordFailedVerification counts a wrong code and discards the pending code
// once MaxVerificationAttempts is reached.
func (u *AuthUseCase) recordFailedVerification(ctx context.Context, user entities.User) error {
	user.VerificationAttempts++
	locked := user.VerificationAttempts >= MaxVerificationAttempts
	if locked {
		user.VerificationCodeHash = ""
		user.VerificationAttempts = 0
	}
	if err := u.users.Put(ctx, user); err != nil {
		return err
	}
	if locked {
		log.Printf("[auth][usecase] verification code discarded after %d attempts email=%s", MaxVerificationAttempts, user.Email)
		return ErrVerificationLocked
	}
	return ErrInvalidVerificationCode
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return AuthResult{}, ErrAccountNotVerified
	}
	return u.openSession(ctx, user)
}

func (u *AuthUseCase) openSession(ctx context.Context, user entities.User) (AuthResult, error) {
	s := entities.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: u.now().UTC().Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return AuthResult{}, err
	}
	log.Printf("[auth][usecase] session opened user_id=%s role=%s", user.ID, user.Role)
	return AuthResult{User: user, Session: s}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrUnauthorized
	}
	return u.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token. Unknown and expired tokens are both
// ErrUnauthorized; expired sessions are removed.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrUnauthorized
	}
	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrUnauthorized
	}
	if s.Expired(u.now()) {
		if err := u.sessions.Delete(ctx, token); err != nil {
			log.Printf("[auth][usecase] expired session cleanup failed err=%v", err)
		}
		return entities.Session{}, ErrUnauthorized
	}
	return s, nil
}

// IsAdmin resolves token and requires the admin role. Sessions of other
// roles yield ErrForbidden.
func (u *AuthUseCase) IsAdmin(ctx context.Context, token string) (entities.Session, error) {
	s, err := u.Authenticate(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Role != entities.UserRoleAdmin {
		return entities.Session{}, ErrForbidden
	}
	return s, nil
}

func (u *AuthUseCase) Me(ctx context.Context, token string) (entities.User, error) {
	s, err := u.Authenticate(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.users.GetByEmail(ctx, s.Email)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUnauthorized
	}
	return user, nil
}

// BootstrapAdmin makes sure a verified admin account with the given
// credentials exists. Empty credentials disable it.
func (u *AuthUseCase) BootstrapAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID != "" && user.IsAdmin() && user.IsVerified &&
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if user.ID == "" {
		user = entities.User{ID: uuid.NewString(), Email: email, CreatedAt: u.now().UTC()}
	}
	user.Role = entities.UserRoleAdmin
	user.IsVerified = true
	user.PasswordHash = string(hash)
	user.VerificationCodeHash = ""
	if err := u.users.Put(ctx, user); err != nil {
		return err
	}
	log.Printf("[auth][usecase] admin bootstrapped email=%s", email)
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// generateVerificationCode returns a random 6-digit code (100000-999999).
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
