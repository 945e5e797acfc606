package notification

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogVerificationSender "delivers" verification codes by logging them. It
// stands in for an email provider in local and demo environments.
type LogVerificationSender struct{}

func NewLogVerificationSender() *LogVerificationSender {
	return &LogVerificationSender{}
}

func (s *LogVerificationSender) SendVerificationCode(_ context.Context, email, code string) error {
	log.WithFields(log.Fields{"email": email, "code": code}).Info("[auth][sender] verification code issued")
	return nil
}
