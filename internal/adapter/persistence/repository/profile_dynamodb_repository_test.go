package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"loki/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDynamoRepository_PutThenGet(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewProfileDynamoRepository(ddb, "profiles")
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	p := entities.Profile{ID: "u-1", FullName: "Koffi", Phone: "0707123456", Role: entities.RoleOwner, CreatedAt: now, UpdatedAt: now}

	_, err := repo.Put(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "profiles", aws.ToString(ddb.puts[0].TableName))
	assert.Nil(t, ddb.puts[0].ConditionExpression)

	stored := ddb.puts[0].Item
	ddb.onGet = func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		assert.True(t, aws.ToBool(in.ConsistentRead))
		return &dynamodb.GetItemOutput{Item: stored}, nil
	}

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing item returns zero profile", func(t *testing.T) {
		repo := NewProfileDynamoRepository(&fakeDynamo{}, "profiles")
		p, err := repo.GetByID(context.Background(), "u-404")
		require.NoError(t, err)
		assert.Empty(t, p.ID)
	})

	t.Run("error", func(t *testing.T) {
		ddb := &fakeDynamo{onGet: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		_, err := NewProfileDynamoRepository(ddb, "profiles").GetByID(context.Background(), "u-1")
		assert.ErrorContains(t, err, "throttled")
	})
}
