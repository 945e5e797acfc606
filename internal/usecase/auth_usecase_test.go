package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cardapio_digital/internal/domain/entities"
	mock_interfaces "cardapio_digital/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var authNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type authMocks struct {
	users    *mock_interfaces.MockIUserRepository
	sessions *mock_interfaces.MockISessionRepository
	sender   *mock_interfaces.MockIVerificationSender
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		sessions: mock_interfaces.NewMockISessionRepository(ctrl),
		sender:   mock_interfaces.NewMockIVerificationSender(ctrl),
	}
	uc := NewAuthUseCase(m.users, m.sessions, m.sender, time.Hour)
	uc.now = func() time.Time { return authNow }
	uc.newCode = func() (string, error) { return "123456", nil }
	uc.bcryptCost = bcrypt.MinCost
	return uc, m
}

func hashed(t *testing.T, s string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if _, err := uc.Register(ctx, "not-an-email", "secret1"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if _, err := uc.Register(ctx, "ana@example.com", "123"); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("already verified", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", Email: "ana@example.com", IsVerified: true}, nil)
		if _, err := uc.Register(ctx, " Ana@Example.com ", "secret1"); !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("success sends code", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(func(_ context.Context, u entities.User) error {
			if u.ID == "" || u.Role != entities.UserRoleCustomer || u.IsVerified {
				t.Fatalf("unexpected user: %+v", u)
			}
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) != nil {
				t.Fatalf("expected hashed password")
			}
			if bcrypt.CompareHashAndPassword([]byte(u.VerificationCodeHash), []byte("123456")) != nil {
				t.Fatalf("expected hashed code")
			}
			return nil
		})
		m.sender.EXPECT().SendVerificationCode(gomock.Any(), "ana@example.com", "123456").Return(nil)

		u, err := uc.Register(ctx, "ana@example.com", "secret1")
		if err != nil || u.Email != "ana@example.com" {
			t.Fatalf("unexpected result: %+v, %v", u, err)
		}
	})

	t.Run("sender failure", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
		m.sender.EXPECT().SendVerificationCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		if _, err := uc.Register(ctx, "ana@example.com", "secret1"); !errors.Is(err, ErrVerificationSendFailed) {
			t.Fatalf("expected ErrVerificationSendFailed, got %v", err)
		}
	})
}

func TestAuthUseCase_SendVerificationCode(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		if err := uc.SendVerificationCode(ctx, "ana@example.com"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("already verified", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", IsVerified: true}, nil)
		if err := uc.SendVerificationCode(ctx, "ana@example.com"); !errors.Is(err, ErrEmailAlreadyVerified) {
			t.Fatalf("expected ErrEmailAlreadyVerified, got %v", err)
		}
	})
}

func TestAuthUseCase_VerifyEmail(t *testing.T) {
	ctx := context.Background()
	pending := func(t *testing.T) entities.User {
		return entities.User{ID: "u1", Email: "ana@example.com", Role: entities.UserRoleCustomer, VerificationCodeHash: hashed(t, "123456")}
	}

	t.Run("wrong code counts the attempt", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(pending(t), nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if u.VerificationAttempts != 1 || u.VerificationCodeHash == "" {
				t.Fatalf("expected one recorded attempt with the code kept, got %+v", u)
			}
			return nil
		})
		if _, err := uc.VerifyEmail(ctx, "ana@example.com", "000000"); !errors.Is(err, ErrInvalidVerificationCode) {
			t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
		}
	})

	t.Run("last allowed miss discards the code", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		user := pending(t)
		user.VerificationAttempts = MaxVerificationAttempts - 1
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if u.VerificationCodeHash != "" || u.IsVerified {
				t.Fatalf("expected pending code discarded, got %+v", u)
			}
			return nil
		})
		if _, err := uc.VerifyEmail(ctx, "ana@example.com", "000000"); !errors.Is(err, ErrVerificationLocked) {
			t.Fatalf("expected ErrVerificationLocked, got %v", err)
		}
	})

	t.Run("correct code after lockout is rejected", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		user := pending(t)
		user.VerificationCodeHash = ""
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
		if _, err := uc.VerifyEmail(ctx, "ana@example.com", "123456"); !errors.Is(err, ErrInvalidVerificationCode) {
			t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
		}
	})

	t.Run("resend resets the attempt counter", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		user := pending(t)
		user.VerificationAttempts = 3
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if u.VerificationAttempts != 0 || u.VerificationCodeHash == "" {
				t.Fatalf("expected fresh code with zero attempts, got %+v", u)
			}
			return nil
		})
		m.sender.EXPECT().SendVerificationCode(gomock.Any(), "ana@example.com", "123456").Return(nil)
		if err := uc.SendVerificationCode(ctx, "ana@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success opens session", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(pending(t), nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if !u.IsVerified || u.VerificationCodeHash != "" {
				t.Fatalf("expected verified user without code, got %+v", u)
			}
			return nil
		})
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.VerifyEmail(ctx, "ana@example.com", " 123456 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Session.Token == "" || res.Session.UserID != "u1" || !res.Session.ExpiresAt.Equal(authNow.Add(time.Hour)) {
			t.Fatalf("unexpected session: %+v", res.Session)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		if _, err := uc.Login(ctx, "ana@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", IsVerified: true, PasswordHash: hashed(t, "secret1")}, nil)
		if _, err := uc.Login(ctx, "ana@example.com", "secret2"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("not verified", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", PasswordHash: hashed(t, "secret1")}, nil)
		if _, err := uc.Login(ctx, "ana@example.com", "secret1"); !errors.Is(err, ErrAccountNotVerified) {
			t.Fatalf("expected ErrAccountNotVerified, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", Email: "ana@example.com", Role: entities.UserRoleAdmin, IsVerified: true, PasswordHash: hashed(t, "secret1")}, nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Login(ctx, "ANA@example.com", "secret1")
		if err != nil || res.Session.Role != entities.UserRoleAdmin {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestAuthUseCase_Sessions(t *testing.T) {
	ctx := context.Background()

	t.Run("blank token", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if _, err := uc.Authenticate(ctx, " "); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if err := uc.Logout(ctx, ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{}, nil)
		if _, err := uc.Authenticate(ctx, "tok"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("expired token is removed", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{Token: "tok", ExpiresAt: authNow.Add(-time.Minute)}, nil)
		m.sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil)
		if _, err := uc.Authenticate(ctx, "tok"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("me", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{Token: "tok", Email: "ana@example.com", ExpiresAt: authNow.Add(time.Minute)}, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1", Email: "ana@example.com"}, nil)

		u, err := uc.Me(ctx, "tok")
		if err != nil || u.ID != "u1" {
			t.Fatalf("unexpected result: %+v, %v", u, err)
		}
	})

	t.Run("logout", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil)
		if err := uc.Logout(ctx, "tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_IsAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin session", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{Token: "tok", Role: entities.UserRoleAdmin, ExpiresAt: authNow.Add(time.Minute)}, nil)

		s, err := uc.IsAdmin(ctx, "tok")
		if err != nil || s.Token != "tok" {
			t.Fatalf("unexpected result: %+v, %v", s, err)
		}
	})

	t.Run("customer session is forbidden", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{Token: "tok", Role: entities.UserRoleCustomer, ExpiresAt: authNow.Add(time.Minute)}, nil)

		if _, err := uc.IsAdmin(ctx, "tok"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.sessions.EXPECT().Get(gomock.Any(), "tok").Return(entities.Session{}, nil)

		if _, err := uc.IsAdmin(ctx, "tok"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuthUseCase_BootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without credentials", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if err := uc.BootstrapAdmin(ctx, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates admin", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@pink.com").Return(entities.User{}, nil)
		m.users.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if !u.IsAdmin() || !u.IsVerified || u.ID == "" {
				t.Fatalf("unexpected admin: %+v", u)
			}
			return nil
		})
		if err := uc.BootstrapAdmin(ctx, "Admin@Pink.com", "admin123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing admin untouched", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@pink.com").Return(entities.User{ID: "a1", Role: entities.UserRoleAdmin, IsVerified: true, PasswordHash: hashed(t, "admin123")}, nil)
		if err := uc.BootstrapAdmin(ctx, "admin@pink.com", "admin123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGenerateVerificationCode(t *testing.T) {
	re := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	for i := 0; i < 20; i++ {
		code, err := generateVerificationCode()
		if err != nil || !re.MatchString(code) {
			t.Fatalf("unexpected code %q, %v", code, err)
		}
	}
}
