package interfaces

import (
	"context"

	"cardapio_digital/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. GetByEmail
// returns a zero User (empty ID) when the email is unknown.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Put(ctx context.Context, u entities.User) error
}

// ISessionRepository abstracts DynamoDB persistence for Session. Get returns
// a zero Session (empty Token) when the token is unknown.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}

// IVerificationSender delivers account verification codes.
type IVerificationSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}
