package repository

import (
	"context"
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type sessionItem struct {
	Token          string `dynamodbav:"token"`
	UserID         string `dynamodbav:"user_id"`
	Email          string `dynamodbav:"email"`
	Role           string `dynamodbav:"role"`
	ExpiresAt      string `dynamodbav:"expires_at"`
	ExpiresAtEpoch int64  `dynamodbav:"expires_at_epoch"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - TTL attribute: expires_at_epoch (optional; expiry is also checked on read)
type SessionDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *SessionDynamoRepository {
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		Token:          s.Token,
		UserID:         s.UserID,
		Email:          s.Email,
		Role:           string(s.Role),
		ExpiresAt:      formatTime(s.ExpiresAt),
		ExpiresAtEpoch: s.ExpiresAt.Unix(),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	expiresAt := parseTime(it.ExpiresAt)
	if expiresAt.IsZero() && it.ExpiresAtEpoch > 0 {
		expiresAt = time.Unix(it.ExpiresAtEpoch, 0).UTC()
	}
	return entities.Session{
		Token:     it.Token,
		UserID:    it.UserID,
		Email:     it.Email,
		Role:      entities.UserRole(it.Role),
		ExpiresAt: expiresAt,
	}
}
