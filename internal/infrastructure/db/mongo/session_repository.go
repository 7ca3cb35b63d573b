package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository implements ports.SessionRepository on the sessions
// collection. Records are insert-only: sessions never expire and there is no
// logout, so no update or delete path exists.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Token    string             `bson:"token"`
	UserID   primitive.ObjectID `bson:"userId"`
	UserName string             `bson:"user"`
}

func (r *SessionRepository) Insert(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return fmt.Errorf("insert session: bad user id: %w", err)
	}

	doc := mongoSession{
		Token:    session.Token,
		UserID:   userID,
		UserName: session.UserName,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &domain.Session{
		Token:    ms.Token,
		UserID:   ms.UserID.Hex(),
		UserName: ms.UserName,
	}, nil
}

func (r *SessionRepository) ListAll(ctx context.Context) ([]domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []domain.Session
	for cursor.Next(ctx) {
		var ms mongoSession
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, domain.Session{
			Token:    ms.Token,
			UserID:   ms.UserID.Hex(),
			UserName: ms.UserName,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
