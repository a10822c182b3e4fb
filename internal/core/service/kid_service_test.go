package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type family struct {
	parent   *ports.ProvisionResult
	stranger *ports.ProvisionResult
	kid      *ports.ProvisionResult
	admin    *ports.ProvisionResult
	kidID    string
	parentID string
	svc      *KidService
	accounts *stubAccountRepo
	profiles *stubProfileRepo
}

func newFamily(t *testing.T) *family {
	t.Helper()
	f := &family{accounts: newStubAccountRepo(), profiles: newStubProfileRepo()}
	prov := NewProvisioningService(f.accounts, f.profiles, newTestHasher(t), nil, zerolog.Nop())

	f.parent = mustProvision(t, prov.ProvisionParent, parentInput("parent@example.com"))
	f.stranger = mustProvision(t, prov.ProvisionParent, parentInput("other@example.com"))
	f.parentID = f.parent.Profile.(*domain.ParentProfile).ID

	in := kidInput("kid@example.com")
	in.ParentID = f.parentID
	f.kid = mustProvision(t, prov.ProvisionKid, in)
	f.kidID = f.kid.Profile.(*domain.KidProfile).ID

	f.admin = mustProvision(t, prov.ProvisionAdmin, ports.AdminInput{
		AccountInput: ports.AccountInput{Email: "admin@example.com", Password: "secret123"},
		FullName:     "Root Admin",
	})

	f.svc = NewKidService(f.accounts, f.profiles, zerolog.Nop())
	return f
}

func TestKidService_GetAccess(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()

	for _, actor := range []*domain.Account{f.parent.Account, f.kid.Account, f.admin.Account} {
		kid, err := f.svc.Get(ctx, actor, f.kidID)
		if err != nil {
			t.Fatalf("%s: expected access, got %v", actor.Role, err)
		}
		if kid.ID != f.kidID {
			t.Fatalf("unexpected kid: %+v", kid)
		}
	}

	if _, err := f.svc.Get(ctx, f.stranger.Account, f.kidID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another parent, got %v", err)
	}
	if _, err := f.svc.Get(ctx, f.admin.Account, "kid-404"); !errors.Is(err, domain.ErrKidNotFound) {
		t.Fatalf("expected ErrKidNotFound, got %v", err)
	}
}

func TestKidService_Update(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()

	points, avatar := 120, "img/rocket"
	kid, err := f.svc.Update(ctx, f.parent.Account, f.kidID, ports.KidUpdate{
		Points: &points,
		Avatar: &avatar,
		Streak: &domain.Streak{Current: 3, Longest: 5},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if kid.Points != 120 || kid.Avatar != "img/rocket" || kid.Streak.Longest != 5 {
		t.Fatalf("patch not applied: %+v", kid)
	}
	if kid.AccountID != f.kid.Account.ID {
		t.Fatalf("owning account changed")
	}

	stored, _ := f.profiles.FindKid(ctx, f.kidID)
	if stored.Points != 120 {
		t.Fatalf("update not persisted: %+v", stored)
	}

	negative := -1
	if _, err := f.svc.Update(ctx, f.parent.Account, f.kidID, ports.KidUpdate{Points: &negative}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := f.svc.Update(ctx, f.stranger.Account, f.kidID, ports.KidUpdate{Avatar: &avatar}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestKidService_DeleteCascades(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()

	if err := f.svc.Delete(ctx, f.kid.Account, f.kidID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("kids must not delete themselves, got %v", err)
	}

	if err := f.svc.Delete(ctx, f.parent.Account, f.kidID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.accounts.FindByID(ctx, f.kid.Account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected kid account to be deleted, got %v", err)
	}
	if _, err := f.profiles.FindKid(ctx, f.kidID); !errors.Is(err, domain.ErrKidNotFound) {
		t.Fatalf("expected kid profile to be deleted, got %v", err)
	}
}

func TestKidService_DeleteProfileFailureKeepsAccount(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()
	f.profiles.deleteErr = errors.New("mongo unavailable")

	if err := f.svc.Delete(ctx, f.parent.Account, f.kidID); err == nil {
		t.Fatalf("expected delete to fail")
	}
	if _, err := f.accounts.FindByID(ctx, f.kid.Account.ID); err != nil {
		t.Fatalf("account must survive a failed profile delete, got %v", err)
	}

	f.profiles.deleteErr = nil
	if err := f.svc.Delete(ctx, f.parent.Account, f.kidID); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestKidService_DeleteAccountFailureIsLogged(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()
	var buf bytes.Buffer
	f.svc = NewKidService(f.accounts, f.profiles, zerolog.New(&buf))
	f.accounts.deleteErr = errors.New("mongo unavailable")

	if err := f.svc.Delete(ctx, f.admin.Account, f.kidID); err == nil {
		t.Fatalf("expected delete to fail")
	}
	if !strings.Contains(buf.String(), f.kid.Account.ID) || !strings.Contains(buf.String(), "account remains") {
		t.Fatalf("expected the leftover account to be logged, got %s", buf.String())
	}
}

func TestKidService_ListByParent(t *testing.T) {
	f := newFamily(t)
	ctx := context.Background()

	res, err := f.svc.ListByParent(ctx, f.parent.Account, f.parentID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Parent.ID != f.parentID || len(res.Kids) != 1 || res.Kids[0].ID != f.kidID {
		t.Fatalf("unexpected listing: %+v", res)
	}

	if _, err := f.svc.ListByParent(ctx, f.stranger.Account, f.parentID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.ListByParent(ctx, f.admin.Account, f.parentID); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if _, err := f.svc.ListByParent(ctx, f.admin.Account, "parent-404"); !errors.Is(err, domain.ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
}
