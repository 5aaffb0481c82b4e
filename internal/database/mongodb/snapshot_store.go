package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// SnapshotStore keeps one draw session per document, keyed by session key.
// The payload is stored as a nested document so it stays queryable from the shell.
type SnapshotStore struct {
	collection *mongo.Collection
	key        string
}

// NewSnapshotStore creates a store for the given session key
func NewSnapshotStore(db *mongo.Database, sessionKey string) *SnapshotStore {
	return &SnapshotStore{
		collection: db.Collection(SnapshotCollection),
		key:        sessionKey,
	}
}

// Load reads the session document. A missing document is an empty session.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	var doc bson.Raw
	err := s.collection.FindOne(ctx, bson.M{FieldID: s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.FromContext(ctx).Info(LogMsgSnapshotMissing, "session_key", s.key)
		return domain.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotLoad, s.key, err)
	}

	payload, err := doc.LookupErr(FieldPayload)
	if err != nil {
		// A document without a payload has nothing to restore, not even a ledger
		return domain.EmptySnapshot(), nil
	}

	// Relaxed extended JSON turns the stored document back into the plain JSON the codec reads.
	// Anything that is not a document is handed to the codec as is so its ledger gets flagged.
	var data []byte
	if raw, ok := payload.DocumentOK(); ok {
		data, err = bson.MarshalExtJSON(raw, false, false)
		if err != nil {
			return nil, fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotLoad, s.key, err)
		}
	} else {
		data = []byte(payload.String())
	}
	return snapshot.Decode(ctx, data)
}

// Save replaces the session document, creating it if needed
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotSave, err)
	}

	var payload bson.D
	if err := bson.UnmarshalExtJSON(data, false, &payload); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}

	doc := bson.D{
		{Key: FieldID, Value: s.key},
		{Key: FieldPayload, Value: payload},
		{Key: FieldUpdatedAt, Value: time.Now().UTC()},
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{FieldID: s.key}, doc, opts); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "session_key", s.key, "bytes", len(data))
	return nil
}

// Delete removes the session document
func (s *SnapshotStore) Delete(ctx context.Context) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{FieldID: s.key}); err != nil {
		return fmt.Errorf(ErrContextSession, s.key, err)
	}
	return nil
}
