package repository

import (
	"context"
	"sort"
	"strings"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type houseItem struct {
	ID          string  `dynamodbav:"id"`
	OwnerID     string  `dynamodbav:"owner_id"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description,omitempty"`
	Type        string  `dynamodbav:"type"`
	City        string  `dynamodbav:"city,omitempty"`
	District    string  `dynamodbav:"district,omitempty"`
	Price       float64 `dynamodbav:"price"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// HouseDynamoRepository persists listings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
type HouseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IHouseRepository = (*HouseDynamoRepository)(nil)

func NewHouseDynamoRepository(ddb DynamoDBAPI, tableName string) *HouseDynamoRepository {
	return &HouseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HouseDynamoRepository) Create(ctx context.Context, h entities.House) (entities.House, error) {
	av, err := attributevalue.MarshalMap(toHouseItem(h))
	if err != nil {
		return entities.House{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.House{}, mapConditionErr(err)
	}
	return h, nil
}

func (r *HouseDynamoRepository) GetByID(ctx context.Context, id string) (entities.House, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.House{}, err
	}
	if len(out.Item) == 0 {
		return entities.House{}, nil
	}

	var it houseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.House{}, err
	}
	return fromHouseItem(it), nil
}

// List returns listings newest first. Type and city are matched on the fetched
// rows; city matching ignores case.
func (r *HouseDynamoRepository) List(ctx context.Context, filter interfaces.HouseFilter) ([]entities.House, error) {
	raw, err := selectItems(ctx, r.ddb, r.tableName, OwnerIDIndex, "owner_id", filter.OwnerID, "")
	if err != nil {
		return nil, err
	}

	houses := make([]entities.House, 0, len(raw))
	for _, av := range raw {
		var it houseItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		h := fromHouseItem(it)
		if filter.Type != "" && h.Type != filter.Type {
			continue
		}
		if filter.City != "" && !strings.EqualFold(h.City, filter.City) {
			continue
		}
		houses = append(houses, h)
	}
	sort.SliceStable(houses, func(i, j int) bool { return houses[i].CreatedAt.After(houses[j].CreatedAt) })
	return houses, nil
}

func toHouseItem(h entities.House) houseItem {
	return houseItem{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Title:       h.Title,
		Description: h.Description,
		Type:        string(h.Type),
		City:        h.City,
		District:    h.District,
		Price:       h.Price,
		CreatedAt:   formatTime(h.CreatedAt),
		UpdatedAt:   formatTime(h.UpdatedAt),
	}
}

func fromHouseItem(it houseItem) entities.House {
	return entities.House{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Title:       it.Title,
		Description: it.Description,
		Type:        entities.PropertyType(it.Type),
		City:        it.City,
		District:    it.District,
		Price:       it.Price,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
