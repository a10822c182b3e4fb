package handler

import (
	"encoding/json"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// identity flattens an account and its role profile into one object. The
// account id is "id"; the profile keeps its own id as "profileId". The
// password hash never leaves the account type.
func identity(account *domain.Account, profile domain.Profile) map[string]any {
	out := map[string]any{}

	if profile != nil {
		if raw, err := json.Marshal(profile); err == nil {
			_ = json.Unmarshal(raw, &out)
		}
		if id, ok := out["id"]; ok {
			out["profileId"] = id
		}
	}

	out["id"] = account.ID
	out["userId"] = account.ID
	out["email"] = account.Email
	out["role"] = account.Role
	out["isActive"] = account.IsActive
	out["isVerified"] = account.IsVerified
	out["createdAt"] = account.CreatedAt
	out["updatedAt"] = account.UpdatedAt
	return out
}
