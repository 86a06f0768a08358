package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records every request and answers with the configured hooks.
// Unset hooks return empty outputs.
type fakeDynamo struct {
	onPut      func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	onGet      func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	onUpdate   func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	onQuery    func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	onScan     func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	onTransact func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)

	puts      []*dynamodb.PutItemInput
	gets      []*dynamodb.GetItemInput
	updates   []*dynamodb.UpdateItemInput
	queries   []*dynamodb.QueryInput
	scans     []*dynamodb.ScanInput
	transacts []*dynamodb.TransactWriteItemsInput
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.onPut != nil {
		return f.onPut(in)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	if f.onGet != nil {
		return f.onGet(in)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.onUpdate != nil {
		return f.onUpdate(in)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.onQuery != nil {
		return f.onQuery(in)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	if f.onScan != nil {
		return f.onScan(in)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.onTransact != nil {
		return f.onTransact(in)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
