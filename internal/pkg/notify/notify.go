package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"
)

const subject = "Birthdays today"

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Publisher mirrors announcements to an SNS topic. With no topic configured
// it does nothing.
type Publisher struct {
	Log      *logrus.Entry
	TopicARN string
	SNS      SNSAPI
}

func (publisher *Publisher) Publish(ctx context.Context, message string) error {
	if publisher.TopicARN == "" {
		return nil
	}

	input := &sns.PublishInput{
		Message:  aws.String(message),
		Subject:  aws.String(subject),
		TopicArn: aws.String(publisher.TopicARN),
	}

	output, err := publisher.SNS.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("error publishing to AWS SNS topic %s: %w", publisher.TopicARN, err)
	}

	publisher.Log.WithField("message_id", aws.ToString(output.MessageId)).Info("published announcement")

	return nil
}
