package database

import (
	"context"
	"log"

	appconfig "loki/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty Endpoint points the
// client at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDB) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		log.Printf("[database][dynamodb] using endpoint=%s", cfg.Endpoint)
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDB) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	// Against AWS the default chain (role, profile) is used instead.
	if cfg.Endpoint != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
