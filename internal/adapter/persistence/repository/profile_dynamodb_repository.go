package repository

import (
	"context"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type profileItem struct {
	ID        string `dynamodbav:"id"`
	FullName  string `dynamodbav:"full_name"`
	Phone     string `dynamodbav:"phone"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists user profiles keyed by identity subject.
//
// Table requirements:
//   - PK: id (string)
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		ID:        it.ID,
		FullName:  it.FullName,
		Phone:     it.Phone,
		Role:      entities.Role(it.Role),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

// Put replaces the whole profile.
func (r *ProfileDynamoRepository) Put(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(profileItem{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.Profile{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}
