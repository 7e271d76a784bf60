package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/mailer"
)

type memStore struct {
	messages []Message
}

func (s *memStore) Insert(_ context.Context, m Message) error {
	s.messages = append(s.messages, m)
	return nil
}

func (s *memStore) List(_ context.Context) ([]Message, error) {
	return s.messages, nil
}

func TestCreateStoresAndNotifies(t *testing.T) {
	store := &memStore{}
	mock := &mailer.Mock{}
	svc := NewService(store, mock, "owner@example.com", "noreply@example.com", nil)

	m, err := svc.Create(context.Background(), CreateInput{
		Name: "Ayşe", Email: "ayse@example.com", Message: "Is the sofa in stock?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	require.Len(t, store.messages, 1)

	require.Len(t, mock.Sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, mock.Sent[0].To)
	assert.Contains(t, mock.Sent[0].Subject, "Ayşe")
	assert.Contains(t, mock.Sent[0].Body, "Is the sofa in stock?")
}

func TestCreateSucceedsWhenMailFails(t *testing.T) {
	store := &memStore{}
	mock := &mailer.Mock{Err: errors.New("smtp down")}
	svc := NewService(store, mock, "owner@example.com", "noreply@example.com", nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Ayşe", Email: "ayse@example.com", Message: "hello",
	})
	require.NoError(t, err)
	assert.Len(t, store.messages, 1)
}

func TestCreateWithoutMailer(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil, "", "", nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Ayşe", Email: "ayse@example.com", Message: "hello",
	})
	require.NoError(t, err)
	assert.Len(t, store.messages, 1)
}
