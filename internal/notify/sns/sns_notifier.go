package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"docdigest/internal/config"
	"docdigest/internal/domain"
	"docdigest/internal/port"
)

type snsNotifier struct {
	client   *sns.Client
	topicARN string
}

// NewNotifier creates an SNS-backed Notifier publishing to the given topic.
func NewNotifier(cfg *config.AWSConfig, topicARN string) (port.Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config for sns: %w", err)
	}

	var snsOpts []func(*sns.Options)
	if cfg.Endpoint != "" {
		snsOpts = append(snsOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &snsNotifier{
		client:   sns.NewFromConfig(awsCfg, snsOpts...),
		topicARN: topicARN,
	}, nil
}

func (n *snsNotifier) Publish(ctx context.Context, msg domain.NotificationMessage) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(msg.Subject),
		Message:  aws.String(msg.Body),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
