package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// CloudConfig holds the AWS settings of the application
type CloudConfig struct {
	Region string
	// Endpoint overrides the service endpoints, used with LocalStack
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewConfig loads the AWS configuration. Without static keys the default credential chain
// (environment variables, shared profile, IAM role) is used.
func NewConfig(ctx context.Context, cloud CloudConfig) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(cloud.Region),
	}

	if cloud.AccessKeyID != "" && cloud.SecretAccessKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cloud.AccessKeyID, cloud.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cloud.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(cloud.Endpoint)
	}
	return cfg, nil
}
