package contact_test

import (
	"context"
	"testing"

	"github.com/fixora/fixora-backend/contact"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	inserted []contact.Message
}

func (f *fakeMessageRepo) InsertMessage(_ context.Context, msg contact.Message) (contact.Message, error) {
	msg.ID = "m1"
	f.inserted = append(f.inserted, msg)
	return msg, nil
}

func validMessage() contact.Message {
	return contact.Message{
		Name:    "Uma",
		Email:   "Uma@Example.com",
		Subject: "Feedback",
		Message: "Great service!",
	}
}

func TestSubmitMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := contact.NewService(repo)

		stored, err := svc.SubmitMessage(ctx, validMessage())

		require.Nil(t, err)
		require.Equal(t, "m1", stored.ID)
		require.Equal(t, "uma@example.com", stored.Email)
		require.Len(t, repo.inserted, 1)
	})

	t.Run("missing field", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := contact.NewService(repo)

		msg := validMessage()
		msg.Subject = " "

		_, err := svc.SubmitMessage(ctx, msg)

		require.ErrorIs(t, err, contact.ErrMissingFields)
		require.Empty(t, repo.inserted)
	})
}
