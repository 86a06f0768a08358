package repository

import (
	"context"
	"testing"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateItems(t *testing.T, bookingID string, dates ...string) []map[string]types.AttributeValue {
	t.Helper()
	out := make([]map[string]types.AttributeValue, 0, len(dates))
	for _, d := range dates {
		av, err := attributevalue.MarshalMap(bookingDateItem{BookingID: bookingID, Date: d})
		require.NoError(t, err)
		out = append(out, av)
	}
	return out
}

func TestBookingDynamoRepository_Create(t *testing.T) {
	fee := int64(5000)
	b := entities.BookingRequest{
		ID: "b-1", HouseID: "h-1", TenantID: "t-1", OwnerID: "o-1",
		StartDate: "2025-03-05", EndDate: "2025-03-20", MoveInDate: "2025-03-05",
		ReservationDates: []string{"2025-03-05", "2025-03-10", "2025-03-20"},
		Status:           entities.BookingStatusPending, CommissionFee: &fee, MonthlyRent: 150000,
	}
	ddb := &fakeDynamo{}
	repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

	_, err := repo.Create(context.Background(), b)
	require.NoError(t, err)

	require.Len(t, ddb.transacts, 1)
	items := ddb.transacts[0].TransactItems
	require.Len(t, items, 4)
	assert.Equal(t, "bookings", aws.ToString(items[0].Put.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(items[0].Put.ConditionExpression))

	var stored bookingItem
	require.NoError(t, attributevalue.UnmarshalMap(items[0].Put.Item, &stored))
	require.NotNil(t, stored.CommissionFee)
	assert.Equal(t, int64(5000), *stored.CommissionFee)
	_, hasDates := items[0].Put.Item["reservation_dates"]
	assert.False(t, hasDates)

	for i, d := range b.ReservationDates {
		put := items[i+1].Put
		assert.Equal(t, "booking_dates", aws.ToString(put.TableName))
		var it bookingDateItem
		require.NoError(t, attributevalue.UnmarshalMap(put.Item, &it))
		assert.Equal(t, bookingDateItem{BookingID: "b-1", Date: d}, it)
	}
}

func TestBookingDynamoRepository_CreateNullFee(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

	_, err := repo.Create(context.Background(), entities.BookingRequest{ID: "b-1", ReservationDates: []string{"2025-03-05"}})
	require.NoError(t, err)
	_, hasFee := ddb.transacts[0].TransactItems[0].Put.Item["commission_fee"]
	assert.False(t, hasFee)
}

func TestBookingDynamoRepository_GetByID(t *testing.T) {
	t.Run("joins reservation dates sorted", func(t *testing.T) {
		ddb := &fakeDynamo{
			onGet: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				av, err := attributevalue.MarshalMap(toBookingItem(entities.BookingRequest{ID: "b-1", StartDate: "2025-03-05", EndDate: "2025-03-20"}))
				require.NoError(t, err)
				return &dynamodb.GetItemOutput{Item: av}, nil
			},
			onQuery: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, "booking_dates", aws.ToString(in.TableName))
				return &dynamodb.QueryOutput{Items: dateItems(t, "b-1", "2025-03-20", "2025-03-05", "2025-03-10")}, nil
			},
		}
		repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

		b, err := repo.GetByID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-05", "2025-03-10", "2025-03-20"}, b.ReservationDates)
		assert.Nil(t, b.CommissionFee)
	})

	t.Run("missing booking skips the dates query", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

		b, err := repo.GetByID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Empty(t, b.ID)
		assert.Empty(t, ddb.queries)
	})
}

func TestBookingDynamoRepository_List(t *testing.T) {
	t.Run("tenant filter uses the tenant index", func(t *testing.T) {
		ddb := &fakeDynamo{onQuery: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) == TenantIDIndex {
				av, err := attributevalue.MarshalMap(toBookingItem(entities.BookingRequest{ID: "b-1", TenantID: "t-1"}))
				require.NoError(t, err)
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
			}
			return &dynamodb.QueryOutput{Items: dateItems(t, "b-1", "2025-03-05")}, nil
		}}
		repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

		out, err := repo.List(context.Background(), interfaces.BookingFilter{TenantID: "t-1"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, []string{"2025-03-05"}, out[0].ReservationDates)
		assert.Equal(t, "tenant_id", ddb.queries[0].ExpressionAttributeNames["#key"])
	})

	t.Run("owner filter uses the owner index", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewBookingDynamoRepository(ddb, "bookings", "booking_dates")

		_, err := repo.List(context.Background(), interfaces.BookingFilter{OwnerID: "o-1", Status: entities.BookingStatusPending})
		require.NoError(t, err)
		require.Len(t, ddb.queries, 1)
		assert.Equal(t, OwnerIDIndex, aws.ToString(ddb.queries[0].IndexName))
		assert.Equal(t, "#status = :status", aws.ToString(ddb.queries[0].FilterExpression))
	})
}
