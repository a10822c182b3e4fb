package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

func TestCodeReplacement_KeyedOnNormalizedEmail(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	filter, doc := codeReplacement(&domain.VerificationCode{
		Email:     "  Kid@Example.COM ",
		Code:      "042917",
		Purpose:   domain.PurposeResetPassword,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.CodeTTL),
	})

	if len(filter) != 1 || filter["email"] != "kid@example.com" {
		t.Fatalf("expected a filter on the email only, got %v", filter)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// A replacement carrying _id would fail against an existing document.
	if _, ok := m["_id"]; ok {
		t.Fatalf("replacement must not set _id: %v", m)
	}
	if m["email"] != "kid@example.com" || m["code"] != "042917" || m["purpose"] != "reset_password" {
		t.Fatalf("unexpected replacement: %v", m)
	}
}

func TestVerificationIndexes(t *testing.T) {
	var uniqueEmail, ttl bool
	for _, idx := range verificationIndexes() {
		keys := idx.Keys.(bson.D)
		switch keys[0].Key {
		case "email":
			uniqueEmail = idx.Options != nil && idx.Options.Unique != nil && *idx.Options.Unique
		case "expires_at":
			ttl = idx.Options != nil && idx.Options.ExpireAfterSeconds != nil && *idx.Options.ExpireAfterSeconds == 0
		}
	}
	if !uniqueEmail {
		t.Fatalf("expected a unique index on email")
	}
	if !ttl {
		t.Fatalf("expected a TTL index on expires_at")
	}
}
