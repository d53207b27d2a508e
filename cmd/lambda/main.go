package main

import (
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"docdigest/internal/callback"
	"docdigest/internal/config"
	"docdigest/internal/handler"
	snsnotify "docdigest/internal/notify/sns"
	ssmsecrets "docdigest/internal/secrets/ssm"
	s3storage "docdigest/internal/storage/s3"
	"docdigest/internal/store/dynamo"
	"docdigest/internal/summarizer/openrouter"
)

func main() {
	dispatcher, err := buildDispatcher()
	if err != nil {
		log.Fatal(err)
	}
	lambda.Start(dispatcher.Handle)
}

// buildDispatcher constructs every client once at cold start; they are
// reused across invocations.
func buildDispatcher() (*handler.Dispatcher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storage, err := s3storage.NewClient(&cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	store, err := dynamo.NewSummaryStore(&cfg.AWS, cfg.Store.TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DynamoDB store: %w", err)
	}

	notifier, err := snsnotify.NewNotifier(&cfg.AWS, cfg.Notifier.TopicARN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SNS notifier: %w", err)
	}

	params, err := ssmsecrets.NewParameterStore(&cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SSM parameter store: %w", err)
	}

	summarizer := openrouter.NewClient(params, &cfg.Summarizer)
	reporter := callback.NewReporter()

	return handler.NewDispatcher(
		cfg, storage, store, notifier, summarizer, reporter,
		lambdacontext.LogStreamName,
	), nil
}
