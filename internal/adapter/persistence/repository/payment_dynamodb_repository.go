package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	ContactID         string `dynamodbav:"contact_id"`
	PayableBy         string `dynamodbav:"payable_by"`
	Amount            int64  `dynamodbav:"amount"`
	Type              string `dynamodbav:"type"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string `dynamodbav:"provider_status,omitempty"`
	ProviderPayload   string `dynamodbav:"provider_payload,omitempty"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
}

// PaymentDynamoRepository persists commissions. Commissions are inserted by
// ContactDynamoRepository in the same transaction as the funnel transition.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payable_by-index (PK: payable_by)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	raw, err := selectItems(ctx, r.ddb, r.tableName, PayableByIndex, "payable_by", filter.PayableBy, string(filter.Status))
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })
	return payments, nil
}

// MarkPaid settles a commission with the gateway receipt. It fails with
// interfaces.ErrConditionFailed when the commission is missing or no longer
// pending.
func (r *PaymentDynamoRepository) MarkPaid(ctx context.Context, id string, receipt interfaces.ProviderReceipt, paidAt time.Time) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression: aws.String("SET #status = :paid, #provider_payment_id = :provider_payment_id, " +
			"#provider_status = :provider_status, #provider_payload = :provider_payload, #paid_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#status":              "status",
			"#provider_payment_id": "provider_payment_id",
			"#provider_status":     "provider_status",
			"#provider_payload":    "provider_payload",
			"#paid_at":             "paid_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":             &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":paid":                &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":provider_payment_id": &types.AttributeValueMemberS{Value: receipt.PaymentID},
			":provider_status":     &types.AttributeValueMemberS{Value: receipt.Status},
			":provider_payload":    &types.AttributeValueMemberS{Value: string(receipt.Payload)},
			":paid_at":             &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, mapConditionErr(err)
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                p.ID,
		ContactID:         p.ContactID,
		PayableBy:         p.PayableBy,
		Amount:            p.Amount,
		Type:              string(p.Type),
		Status:            string(p.Status),
		CreatedAt:         formatTime(p.CreatedAt),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		ProviderPayload:   string(p.ProviderPayload),
	}
	if p.PaidAt != nil {
		it.PaidAt = formatTime(*p.PaidAt)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		ContactID:         it.ContactID,
		PayableBy:         it.PayableBy,
		Amount:            it.Amount,
		Type:              entities.PaymentType(it.Type),
		Status:            entities.PaymentStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	if it.ProviderPayload != "" && json.Valid([]byte(it.ProviderPayload)) {
		p.ProviderPayload = json.RawMessage(it.ProviderPayload)
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		p.PaidAt = &paidAt
	}
	return p
}
