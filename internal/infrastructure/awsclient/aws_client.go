package awsclient

import (
	"context"

	"cardapio_digital/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// Clients bundles the AWS service clients used by the service.
type Clients struct {
	DynamoDB *dynamodb.Client
	S3       *s3.Client
}

// Connect creates DynamoDB and S3 clients from cfg, exiting on failure.
func Connect(cfg config.Config) Clients {
	awsCfg, err := NewConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return Clients{
		DynamoDB: dynamodb.NewFromConfig(awsCfg),
		S3: s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			// Local S3 emulators only serve path-style URLs.
			o.UsePathStyle = cfg.S3Endpoint != ""
		}),
	}
}

func NewConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	}

	endpoints := endpointOverrides(cfg)
	if len(endpoints) > 0 {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if url, ok := endpoints[service]; ok {
				return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// endpointOverrides maps SDK service ids to custom endpoints.
func endpointOverrides(cfg config.Config) map[string]string {
	out := map[string]string{}
	if cfg.DynamoDBEndpoint != "" {
		out[dynamodb.ServiceID] = cfg.DynamoDBEndpoint
	}
	if cfg.S3Endpoint != "" {
		out[s3.ServiceID] = cfg.S3Endpoint
	}
	return out
}
