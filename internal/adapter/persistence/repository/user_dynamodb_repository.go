package repository

import (
	"context"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	Email                string `dynamodbav:"email"`
	ID                   string `dynamodbav:"id"`
	Role                 string `dynamodbav:"role"`
	IsVerified           bool   `dynamodbav:"is_verified"`
	PasswordHash         string `dynamodbav:"password_hash"`
	VerificationCodeHash string `dynamodbav:"verification_code_hash,omitempty"`
	VerificationAttempts int    `dynamodbav:"verification_attempts,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lowercase)
type UserDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// Put creates or replaces the user record.
func (r *UserDynamoRepository) Put(ctx context.Context, u entities.User) error {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toUserItem(u entities.User) userItem {
	return userItem{
		Email:                u.Email,
		ID:                   u.ID,
		Role:                 string(u.Role),
		IsVerified:           u.IsVerified,
		PasswordHash:         u.PasswordHash,
		VerificationCodeHash: u.VerificationCodeHash,
		VerificationAttempts: u.VerificationAttempts,
		CreatedAt:            formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:                   it.ID,
		Email:                it.Email,
		Role:                 entities.UserRole(it.Role),
		IsVerified:           it.IsVerified,
		PasswordHash:         it.PasswordHash,
		VerificationCodeHash: it.VerificationCodeHash,
		VerificationAttempts: it.VerificationAttempts,
		CreatedAt:            parseTime(it.CreatedAt),
	}
}
