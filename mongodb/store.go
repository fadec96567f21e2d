package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DEEJ4Y/cronedit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds the configuration for the MongoDB schedule store.
type Config struct {
	// Collection is the MongoDB collection where schedules are stored.
	// Required.
	Collection *mongo.Collection

	// Field names for record properties (optional, have defaults)
	NameField      string // default: "name"
	CronField      string // default: "cron"
	ModeField      string // default: "mode"
	DialectField   string // default: "dialect"
	UpdatedAtField string // default: "updatedAt"

	// Condition is an optional additional filter applied to every query and
	// merged into every saved document.
	// This allows several tenants to share one collection.
	// Example: bson.M{"owner": "billing"}
	Condition bson.M
}

// Store implements cronedit.ScheduleStore for MongoDB.
type Store struct {
	collection     *mongo.Collection
	nameField      string
	cronField      string
	modeField      string
	dialectField   string
	updatedAtField string
	condition      bson.M
}

// NewStore creates a new MongoDB schedule store with the given configuration.
func NewStore(config Config) (*Store, error) {
	if config.Collection == nil {
		return nil, fmt.Errorf("collection is required")
	}

	// Set defaults
	if config.NameField == "" {
		config.NameField = "name"
	}
	if config.CronField == "" {
		config.CronField = "cron"
	}
	if config.ModeField == "" {
		config.ModeField = "mode"
	}
	if config.DialectField == "" {
		config.DialectField = "dialect"
	}
	if config.UpdatedAtField == "" {
		config.UpdatedAtField = "updatedAt"
	}

	return &Store{
		collection:     config.Collection,
		nameField:      config.NameField,
		cronField:      config.CronField,
		modeField:      config.ModeField,
		dialectField:   config.DialectField,
		updatedAtField: config.UpdatedAtField,
		condition:      config.Condition,
	}, nil
}

// EnsureIndexes creates a unique index on the name field.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: s.nameField, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("create index failed: %w", err)
	}
	return nil
}

// Save upserts the record by name.
func (s *Store) Save(ctx context.Context, record *cronedit.Record) error {
	if record.Name == "" {
		return fmt.Errorf("record name is required")
	}

	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	set := bson.M{
		s.nameField:      record.Name,
		s.cronField:      record.Cron,
		s.modeField:      string(record.Mode),
		s.dialectField:   string(record.Dialect),
		s.updatedAtField: updatedAt,
	}
	for key, value := range s.condition {
		set[key] = value
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result bson.M
	err := s.collection.FindOneAndUpdate(ctx, s.filter(record.Name), bson.M{"$set": set}, opts).Decode(&result)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}

	record.ID = result["_id"]
	record.UpdatedAt = updatedAt
	return nil
}

// Load returns the record stored under name.
func (s *Store) Load(ctx context.Context, name string) (*cronedit.Record, error) {
	var result bson.M
	err := s.collection.FindOne(ctx, s.filter(name)).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", cronedit.ErrRecordNotFound, name)
		}
		return nil, fmt.Errorf("findOne failed: %w", err)
	}

	return s.bsonToRecord(result), nil
}

// Remove deletes the record stored under name.
func (s *Store) Remove(ctx context.Context, name string) error {
	result, err := s.collection.DeleteOne(ctx, s.filter(name))
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", cronedit.ErrRecordNotFound, name)
	}

	return nil
}

// List returns every record matching the store condition, ordered by name.
func (s *Store) List(ctx context.Context) ([]*cronedit.Record, error) {
	filter := bson.M{}
	for key, value := range s.condition {
		filter[key] = value
	}

	opts := options.Find().SetSort(bson.D{{Key: s.nameField, Value: 1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*cronedit.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode failed: %w", err)
		}
		records = append(records, s.bsonToRecord(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor failed: %w", err)
	}

	return records, nil
}

// filter matches the record named name within the store condition.
func (s *Store) filter(name string) bson.M {
	if s.condition == nil {
		return bson.M{s.nameField: name}
	}
	return bson.M{
		"$and": []bson.M{
			{s.nameField: name},
			s.condition,
		},
	}
}

// bsonToRecord converts a BSON document to a Record.
func (s *Store) bsonToRecord(doc bson.M) *cronedit.Record {
	record := &cronedit.Record{}

	if id, ok := doc["_id"]; ok {
		record.ID = id
	}
	if name, ok := doc[s.nameField].(string); ok {
		record.Name = name
	}
	if cron, ok := doc[s.cronField].(string); ok {
		record.Cron = cron
	}
	if mode, ok := doc[s.modeField].(string); ok {
		record.Mode = cronedit.Mode(mode)
	}
	if dialect, ok := doc[s.dialectField].(string); ok {
		record.Dialect = cronedit.Dialect(dialect)
	}
	if updatedAt, ok := doc[s.updatedAtField].(primitive.DateTime); ok {
		record.UpdatedAt = updatedAt.Time()
	}

	return record
}
