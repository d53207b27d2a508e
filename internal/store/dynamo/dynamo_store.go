package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"docdigest/internal/config"
	"docdigest/internal/domain"
	"docdigest/internal/port"
)

type dynamoStore struct {
	client *dynamodb.Client
	table  string
}

// NewSummaryStore creates a DynamoDB-backed SummaryStore writing to the
// given table.
func NewSummaryStore(cfg *config.AWSConfig, table string) (port.SummaryStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config for dynamodb: %w", err)
	}

	var dbOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		dbOpts = append(dbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &dynamoStore{
		client: dynamodb.NewFromConfig(awsCfg, dbOpts...),
		table:  table,
	}, nil
}

// Put writes the record as a single atomic item keyed by file name.
func (s *dynamoStore) Put(ctx context.Context, record *domain.SummaryRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling summary record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item: %w", err)
	}
	return nil
}
