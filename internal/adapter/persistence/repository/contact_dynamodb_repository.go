package repository

import (
	"context"
	"sort"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type contactItem struct {
	ID           string `dynamodbav:"id"`
	HouseID      string `dynamodbav:"house_id"`
	OwnerID      string `dynamodbav:"owner_id"`
	TenantID     string `dynamodbav:"tenant_id,omitempty"`
	TenantName   string `dynamodbav:"tenant_name"`
	TenantPhone  string `dynamodbav:"tenant_phone"`
	PropertyType string `dynamodbav:"property_type"`
	Status       string `dynamodbav:"status"`
	ContactDate  string `dynamodbav:"contact_date"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ContactDynamoRepository persists funnel contacts. The terminal transition
// and its commission are written in one TransactWriteItems call against the
// contacts and payments tables.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
type ContactDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	paymentsTable string
	now           func() time.Time
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb DynamoDBAPI, tableName, paymentsTable string) *ContactDynamoRepository {
	return &ContactDynamoRepository{ddb: ddb, tableName: tableName, paymentsTable: paymentsTable, now: time.Now}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.ContactRecord) (entities.ContactRecord, error) {
	av, err := attributevalue.MarshalMap(toContactItem(c))
	if err != nil {
		return entities.ContactRecord{}, err
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
		return entities.ContactRecord{}, mapConditionErr(err)
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContactRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContactRecord{}, nil
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContactRecord{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) List(ctx context.Context, filter interfaces.ContactFilter) ([]entities.ContactRecord, error) {
	raw, err := selectItems(ctx, r.ddb, r.tableName, OwnerIDIndex, "owner_id", filter.OwnerID, string(filter.Status))
	if err != nil {
		return nil, err
	}

	contacts := make([]entities.ContactRecord, 0, len(raw))
	for _, av := range raw {
		var it contactItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		contacts = append(contacts, fromContactItem(it))
	}
	sort.SliceStable(contacts, func(i, j int) bool { return contacts[i].ContactDate.After(contacts[j].ContactDate) })
	return contacts, nil
}

// AdvanceStatus moves a contact from one stage to the next, conditioned on the
// stored status still being from. When commission is set it is inserted in the
// same transaction and must not exist yet. Either way a lost condition returns
// interfaces.ErrConditionFailed and nothing is written.
func (r *ContactDynamoRepository) AdvanceStatus(ctx context.Context, id string, from, to entities.ContactStatus, commission *entities.Payment) (entities.ContactRecord, error) {
	now := formatTime(r.now())
	updateExpr := "SET #status = :to, #updated_at = :updated_at"
	condExpr := "attribute_exists(#id) AND #status = :from"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	if commission == nil {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.tableName),
			Key:                       idKey(id),
			ConditionExpression:       aws.String(condExpr),
			UpdateExpression:          aws.String(updateExpr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			return entities.ContactRecord{}, mapConditionErr(err)
		}
		var it contactItem
		if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
			return entities.ContactRecord{}, err
		}
		return fromContactItem(it), nil
	}

	commissionAV, err := attributevalue.MarshalMap(toPaymentItem(*commission))
	if err != nil {
		return entities.ContactRecord{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       idKey(id),
					ConditionExpression:       aws.String(condExpr),
					UpdateExpression:          aws.String(updateExpr),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.paymentsTable),
					Item:                commissionAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.ContactRecord{}, mapConditionErr(err)
	}
	return r.GetByID(ctx, id)
}

func toContactItem(c entities.ContactRecord) contactItem {
	return contactItem{
		ID:           c.ID,
		HouseID:      c.HouseID,
		OwnerID:      c.OwnerID,
		TenantID:     c.TenantID,
		TenantName:   c.TenantName,
		TenantPhone:  c.TenantPhone,
		PropertyType: string(c.PropertyType),
		Status:       string(c.Status),
		ContactDate:  formatTime(c.ContactDate),
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromContactItem(it contactItem) entities.ContactRecord {
	return entities.ContactRecord{
		ID:           it.ID,
		HouseID:      it.HouseID,
		OwnerID:      it.OwnerID,
		TenantID:     it.TenantID,
		TenantName:   it.TenantName,
		TenantPhone:  it.TenantPhone,
		PropertyType: entities.PropertyType(it.PropertyType),
		Status:       entities.ContactStatus(it.Status),
		ContactDate:  parseTime(it.ContactDate),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
