package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentDynamoRepository_MarkPaid(t *testing.T) {
	paidAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	receipt := interfaces.ProviderReceipt{PaymentID: "mp-1", Status: "approved", Payload: json.RawMessage(`{"id":1}`)}

	t.Run("settles a pending commission", func(t *testing.T) {
		ddb := &fakeDynamo{onUpdate: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			p := entities.Payment{
				ID: "commission-c-1", Amount: 5000, Status: entities.PaymentStatusPaid,
				ProviderPaymentID: "mp-1", ProviderStatus: "approved", ProviderPayload: receipt.Payload, PaidAt: &paidAt,
			}
			av, err := attributevalue.MarshalMap(toPaymentItem(p))
			require.NoError(t, err)
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		}}
		repo := NewPaymentDynamoRepository(ddb, "payments")

		out, err := repo.MarkPaid(context.Background(), "commission-c-1", receipt, paidAt)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, out.Status)
		require.NotNil(t, out.PaidAt)
		assert.True(t, out.PaidAt.Equal(paidAt))
		assert.JSONEq(t, `{"id":1}`, string(out.ProviderPayload))

		up := ddb.updates[0]
		assert.Equal(t, "attribute_exists(#id) AND #status = :pending", aws.ToString(up.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "mp-1"}, up.ExpressionAttributeValues[":provider_payment_id"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "2025-03-02T10:00:00Z"}, up.ExpressionAttributeValues[":paid_at"])
	})

	t.Run("already paid maps to condition failed", func(t *testing.T) {
		ddb := &fakeDynamo{onUpdate: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")}
		}}
		repo := NewPaymentDynamoRepository(ddb, "payments")

		_, err := repo.MarkPaid(context.Background(), "commission-c-1", receipt, paidAt)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestPaymentDynamoRepository_List(t *testing.T) {
	ddb := &fakeDynamo{onQuery: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		av, err := attributevalue.MarshalMap(toPaymentItem(entities.Payment{ID: "commission-c-1", PayableBy: "o-1", Status: entities.PaymentStatusPending}))
		require.NoError(t, err)
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
	}}
	repo := NewPaymentDynamoRepository(ddb, "payments")

	out, err := repo.List(context.Background(), interfaces.PaymentFilter{PayableBy: "o-1", Status: entities.PaymentStatusPending})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].PaidAt)
	assert.Nil(t, out[0].ProviderPayload)

	q := ddb.queries[0]
	assert.Equal(t, PayableByIndex, aws.ToString(q.IndexName))
	assert.Equal(t, "#key = :key", aws.ToString(q.KeyConditionExpression))
	assert.Equal(t, "#status = :status", aws.ToString(q.FilterExpression))
	assert.Equal(t, "payable_by", q.ExpressionAttributeNames["#key"])
}
