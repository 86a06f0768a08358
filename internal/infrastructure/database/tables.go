package database

import (
	"context"
	"errors"
	"log"

	"loki/internal/adapter/persistence/repository"
	appconfig "loki/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableCreator = (*dynamodb.Client)(nil)

// EnsureTables creates every table the service uses, on-demand billed. Tables
// that already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableCreator, tables appconfig.Tables) error {
	for _, in := range TableDefinitions(tables) {
		name := aws.ToString(in.TableName)
		_, err := ddb.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			log.Printf("[database][dynamodb] create table failed table=%s err=%v", name, err)
			return err
		}
		log.Printf("[database][dynamodb] created table=%s", name)
	}
	return nil
}

func TableDefinitions(tables appconfig.Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		table(tables.Houses, hashKey("id"), gsi(repository.OwnerIDIndex, "owner_id")),
		table(tables.Profiles, hashKey("id")),
		table(tables.Contacts, hashKey("id"), gsi(repository.OwnerIDIndex, "owner_id")),
		table(tables.Payments, hashKey("id"), gsi(repository.PayableByIndex, "payable_by")),
		table(tables.Bookings, hashKey("id"),
			gsi(repository.TenantIDIndex, "tenant_id"),
			gsi(repository.OwnerIDIndex, "owner_id"),
		),
		table(tables.BookingDates, append(hashKey("booking_id"), types.KeySchemaElement{
			AttributeName: aws.String("date"),
			KeyType:       types.KeyTypeRange,
		})),
	}
}

func hashKey(attr string) []types.KeySchemaElement {
	return []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}}
}

func gsi(name, attr string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  hashKey(attr),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

// table declares every key attribute as a string, which holds for all of them.
func table(name string, keys []types.KeySchemaElement, indexes ...types.GlobalSecondaryIndex) *dynamodb.CreateTableInput {
	seen := map[string]bool{}
	var attrs []types.AttributeDefinition
	addAttr := func(ks []types.KeySchemaElement) {
		for _, k := range ks {
			n := aws.ToString(k.AttributeName)
			if seen[n] {
				continue
			}
			seen[n] = true
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
		}
	}
	addAttr(keys)
	for _, idx := range indexes {
		addAttr(idx.KeySchema)
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		KeySchema:            keys,
		AttributeDefinitions: attrs,
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(indexes) > 0 {
		in.GlobalSecondaryIndexes = indexes
	}
	return in
}
