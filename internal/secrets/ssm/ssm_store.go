package ssm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"docdigest/internal/config"
	"docdigest/internal/port"
)

type ssmStore struct {
	client *ssm.Client
}

// NewParameterStore creates an SSM-backed ParameterStore.
func NewParameterStore(cfg *config.AWSConfig) (port.ParameterStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config for ssm: %w", err)
	}

	var ssmOpts []func(*ssm.Options)
	if cfg.Endpoint != "" {
		ssmOpts = append(ssmOpts, func(o *ssm.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &ssmStore{client: ssm.NewFromConfig(awsCfg, ssmOpts...)}, nil
}

// GetParameter fetches a parameter value by name, requesting decryption.
func (s *ssmStore) GetParameter(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm get parameter %q: %w", name, err)
	}
	return aws.ToString(out.Parameter.Value), nil
}
