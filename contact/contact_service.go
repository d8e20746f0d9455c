package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/fixora/fixora-backend/metrics"
)

var ErrMissingFields = errors.New("all fields are required")

type MessageRepository interface {
	InsertMessage(ctx context.Context, msg Message) (Message, error)
}

type Service struct {
	repo MessageRepository
}

func NewService(repo MessageRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SubmitMessage(ctx context.Context, msg Message) (Message, error) {
	for _, field := range []string{msg.Name, msg.Email, msg.Subject, msg.Message} {
		if len(strings.TrimSpace(field)) == 0 {
			return Message{}, ErrMissingFields
		}
	}

	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))

	stored, err := s.repo.InsertMessage(ctx, msg)

	if err == nil {
		metrics.IncContactMessage()
	}

	return stored, err
}
