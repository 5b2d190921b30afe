package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
)

const (
	ChannelSNS = "sns"

	snsSubject = "New home theater quote request"
)

type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSAlerter publishes the quote summary to an operator topic.
type SNSAlerter struct {
	client   snsPublisher
	topicARN string
	logger   *zap.Logger
}

func NewSNSAlerter(ctx context.Context, region, topicARN string, logger *zap.Logger) (*SNSAlerter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newSNSAlerter(sns.NewFromConfig(cfg), topicARN, logger), nil
}

func newSNSAlerter(client snsPublisher, topicARN string, logger *zap.Logger) *SNSAlerter {
	return &SNSAlerter{client: client, topicARN: topicARN, logger: logger}
}

func (s *SNSAlerter) Channel() string {
	return ChannelSNS
}

func (s *SNSAlerter) Notify(ctx context.Context, n entities.Notification) (entities.NotificationReceipt, error) {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(snsSubject),
		Message:  aws.String(n.Summary),
	})
	if err != nil {
		return entities.NotificationReceipt{Channel: ChannelSNS}, fmt.Errorf("publish to %s: %w", s.topicARN, err)
	}
	id := aws.ToString(out.MessageId)
	s.logger.Debug("operator alert published", zap.String("message_id", id))
	return entities.NotificationReceipt{Channel: ChannelSNS, Target: id}, nil
}
