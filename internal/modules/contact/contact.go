package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/mailer"
)

type Message struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type CreateInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// Store is what the service needs from persistence; *Repo satisfies it.
type Store interface {
	Insert(ctx context.Context, m Message) error
	List(ctx context.Context) ([]Message, error)
}

type Repo struct {
	messages *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{messages: db.Collection("contact_messages")}
}

func (r *Repo) Insert(ctx context.Context, m Message) error {
	_, err := r.messages.InsertOne(ctx, m)
	return err
}

func (r *Repo) List(ctx context.Context) ([]Message, error) {
	cur, err := r.messages.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []Message{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Service struct {
	store    Store
	mail     mailer.Service // nil when notifications are off
	notifyTo string
	from     string
	logger   *slog.Logger
}

func NewService(store Store, mail mailer.Service, notifyTo, from string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		mail:     mail,
		notifyTo: notifyTo,
		from:     from,
		logger:   logger,
	}
}

// Create stores the message; the notification mail is best-effort and never
// fails the request.
func (s *Service) Create(ctx context.Context, in CreateInput) (Message, error) {
	m := Message{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, m); err != nil {
		return Message{}, err
	}

	if s.mail != nil && s.notifyTo != "" {
		err := s.mail.Send(ctx, mailer.Email{
			From:    s.from,
			To:      []string{s.notifyTo},
			Subject: fmt.Sprintf("New contact message from %s", m.Name),
			Body:    fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s\n", m.Name, m.Email, m.Phone, m.Message),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "contact notification failed", "message_id", m.ID, "err", err)
		}
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.store.List(ctx)
}
