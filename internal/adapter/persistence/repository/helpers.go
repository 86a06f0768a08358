package repository

import (
	"context"
	"errors"
	"time"

	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Secondary index names shared by the table definitions and the queries.
const (
	OwnerIDIndex   = "owner_id-index"
	TenantIDIndex  = "tenant_id-index"
	PayableByIndex = "payable_by-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func queryAll(ctx context.Context, ddb DynamoDBAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func scanAll(ctx context.Context, ddb DynamoDBAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

// selectItems queries index by key when key is set and scans the table
// otherwise. status, when set, is applied as a filter expression.
func selectItems(ctx context.Context, ddb DynamoDBAPI, table, index, keyAttr, key, status string) ([]map[string]types.AttributeValue, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var filter *string
	if status != "" {
		filter = aws.String("#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: status}
	}

	if key != "" {
		names["#key"] = keyAttr
		values[":key"] = &types.AttributeValueMemberS{Value: key}
		return queryAll(ctx, ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String("#key = :key"),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	}

	in := &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: filter,
	}
	if status != "" {
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	return scanAll(ctx, ddb, in)
}

// conditionFailed reports whether err is a failed condition expression, either
// on a single write or on any item of a cancelled transaction.
func conditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if aws.ToString(r.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

func mapConditionErr(err error) error {
	if conditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}
