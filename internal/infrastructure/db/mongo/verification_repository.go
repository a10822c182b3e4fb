package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const collectionVerificationCodes = "verification_codes"

type VerificationRepository struct {
	col *mongo.Collection
}

func NewVerificationRepository(db *mongo.Database) *VerificationRepository {
	return &VerificationRepository{col: db.Collection(collectionVerificationCodes)}
}

type mongoVerificationCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Code      string             `bson:"code"`
	Purpose   string             `bson:"purpose"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

// Replace stores code as the only live code for its email. The upsert and
// the unique email index keep concurrent issues from leaving two codes.
func (r *VerificationRepository) Replace(ctx context.Context, code *domain.VerificationCode) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, doc := codeReplacement(code)
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)

	var saved mongoVerificationCode
	err := r.col.FindOneAndReplace(ctx, filter, doc, opts).Decode(&saved)
	if mongo.IsDuplicateKeyError(err) {
		// Lost an upsert race; the other document now exists and is replaced.
		err = r.col.FindOneAndReplace(ctx, filter, doc, opts).Decode(&saved)
	}
	if err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	code.ID = saved.ID.Hex()
	return nil
}

func codeReplacement(code *domain.VerificationCode) (bson.M, mongoVerificationCode) {
	email := domain.NormalizeEmail(code.Email)
	return bson.M{"email": email}, mongoVerificationCode{
		Email:     email,
		Code:      code.Code,
		Purpose:   string(code.Purpose),
		CreatedAt: code.CreatedAt,
		ExpiresAt: code.ExpiresAt,
	}
}

// Consume deletes and returns the matching unexpired code in one round trip,
// so two concurrent redemptions cannot both succeed.
func (r *VerificationRepository) Consume(ctx context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"email":      domain.NormalizeEmail(email),
		"code":       code,
		"purpose":    string(purpose),
		"expires_at": bson.M{"$gt": now},
	}

	var doc mongoVerificationCode
	if err := r.col.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidOrExpiredCode
		}
		return nil, fmt.Errorf("consume verification code: %w", err)
	}

	return &domain.VerificationCode{
		ID:        doc.ID.Hex(),
		Email:     doc.Email,
		Code:      doc.Code,
		Purpose:   domain.CodePurpose(doc.Purpose),
		CreatedAt: doc.CreatedAt.UTC(),
		ExpiresAt: doc.ExpiresAt.UTC(),
	}, nil
}

func (r *VerificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"email": domain.NormalizeEmail(email)}); err != nil {
		return fmt.Errorf("delete verification codes: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index and the TTL index that lets
// MongoDB reap expired codes.
func (r *VerificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, verificationIndexes())
	return err
}

func verificationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
}
