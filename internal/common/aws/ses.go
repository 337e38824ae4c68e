// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient wraps the SES v2 SDK client behind the narrow surface the mailer
// consumes, so tests can substitute a fake without touching AWS types.
type SESClient struct {
	client *ses.Client
	region string
}

// NewSESClient builds an SES client from the default AWS credential chain.
func NewSESClient(ctx context.Context, region string) (*SESClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config load: %w", err)
	}
	return &SESClient{client: ses.NewFromConfig(cfg), region: region}, nil
}

// Region reports the region the client was built for.
func (s *SESClient) Region() string {
	return s.region
}

func (s *SESClient) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}
