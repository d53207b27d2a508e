package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"docdigest/internal/callback"
	"docdigest/internal/config"
	"docdigest/internal/handler"
	snsnotify "docdigest/internal/notify/sns"
	ssmsecrets "docdigest/internal/secrets/ssm"
	s3storage "docdigest/internal/storage/s3"
	"docdigest/internal/store/dynamo"
	"docdigest/internal/summarizer/openrouter"
)

// Local invoke harness: POST a raw invocation payload to /invoke and it runs
// through the same dispatcher the Lambda entry uses.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	storage, err := s3storage.NewClient(&cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	store, err := dynamo.NewSummaryStore(&cfg.AWS, cfg.Store.TableName)
	if err != nil {
		return fmt.Errorf("failed to initialize DynamoDB store: %w", err)
	}

	notifier, err := snsnotify.NewNotifier(&cfg.AWS, cfg.Notifier.TopicARN)
	if err != nil {
		return fmt.Errorf("failed to initialize SNS notifier: %w", err)
	}

	params, err := ssmsecrets.NewParameterStore(&cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize SSM parameter store: %w", err)
	}

	dispatcher := handler.NewDispatcher(
		cfg, storage, store, notifier,
		openrouter.NewClient(params, &cfg.Summarizer),
		callback.NewReporter(),
		"local",
	)

	r := gin.Default()
	r.POST("/invoke", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp, _ := dispatcher.Handle(c.Request.Context(), raw)
		c.JSON(http.StatusOK, resp)
	})

	addr := ":9001"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Printf("local harness listening on %s", addr)
	return r.Run(addr)
}
