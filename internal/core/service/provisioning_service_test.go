package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type provisioningFixture struct {
	svc      *ProvisioningService
	accounts *stubAccountRepo
	profiles *stubProfileRepo
	tx       *countingTx
}

func newProvisioningFixture(t *testing.T) *provisioningFixture {
	t.Helper()
	f := &provisioningFixture{
		accounts: newStubAccountRepo(),
		profiles: newStubProfileRepo(),
		tx:       &countingTx{},
	}
	f.svc = NewProvisioningService(f.accounts, f.profiles, newTestHasher(t), f.tx, zerolog.Nop())
	return f
}

func kidInput(email string) ports.KidInput {
	return ports.KidInput{
		AccountInput: ports.AccountInput{Email: email, Password: "secret123"},
		FullName:     "Sam Doe",
		DateOfBirth:  time.Date(2016, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:       "male",
	}
}

func parentInput(email string) ports.ParentInput {
	return ports.ParentInput{
		AccountInput: ports.AccountInput{Email: email, Password: "secret123"},
		FullName:     "Pat Doe",
		Gender:       "female",
		PhoneNumber:  "5551234567",
	}
}

func TestProvisionKid_Defaults(t *testing.T) {
	f := newProvisioningFixture(t)

	res := mustProvision(t, f.svc.ProvisionKid, kidInput("  Kid@Example.COM "))

	if res.Account.Email != "kid@example.com" {
		t.Fatalf("expected normalized email, got %q", res.Account.Email)
	}
	if res.Account.Role != domain.RoleKid || !res.Account.IsActive || res.Account.IsVerified {
		t.Fatalf("unexpected account flags: %+v", res.Account)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.Account.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	kid, ok := res.Profile.(*domain.KidProfile)
	if !ok {
		t.Fatalf("expected *domain.KidProfile, got %T", res.Profile)
	}
	if kid.AccountID != res.Account.ID {
		t.Fatalf("profile not linked to account: %s vs %s", kid.AccountID, res.Account.ID)
	}
	if kid.Points != 0 || kid.Level != 0 || kid.Avatar != domain.DefaultKidAvatar {
		t.Fatalf("unexpected defaults: %+v", kid)
	}
	if kid.Streak != (domain.Streak{}) || len(kid.UnlockedAvatars) != 0 || len(kid.Achievements) != 0 {
		t.Fatalf("unexpected progression defaults: %+v", kid)
	}
	if f.tx.calls != 1 {
		t.Fatalf("expected writes inside one unit of work, got %d", f.tx.calls)
	}
}

func TestProvisionParent_FreeSubscription(t *testing.T) {
	f := newProvisioningFixture(t)

	res := mustProvision(t, f.svc.ProvisionParent, parentInput("parent@example.com"))

	parent := res.Profile.(*domain.ParentProfile)
	if parent.SubscriptionType != domain.SubscriptionFree {
		t.Fatalf("expected free subscription, got %q", parent.SubscriptionType)
	}
	if res.Account.Role != domain.RoleParent {
		t.Fatalf("unexpected role: %s", res.Account.Role)
	}
}

func TestProvisionTeacherAndAdmin(t *testing.T) {
	f := newProvisioningFixture(t)

	teacher := mustProvision(t, f.svc.ProvisionTeacher, ports.TeacherInput{
		AccountInput:    ports.AccountInput{Email: "t@example.com", Password: "secret123"},
		FullName:        "Ms. Frizzle",
		Specializations: []string{"science", " math "},
	})
	tp := teacher.Profile.(*domain.TeacherProfile)
	if len(tp.CoursesCreated) != 0 || tp.CoursesCreated == nil {
		t.Fatalf("expected empty coursesCreated, got %v", tp.CoursesCreated)
	}
	if tp.Specializations[1] != "math" {
		t.Fatalf("expected trimmed specialization, got %q", tp.Specializations[1])
	}

	admin := mustProvision(t, f.svc.ProvisionAdmin, ports.AdminInput{
		AccountInput: ports.AccountInput{Email: "root@example.com", Password: "secret123"},
		FullName:     "Root Admin",
	})
	if admin.Account.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", admin.Account.Role)
	}
}

func TestProvision_DuplicateEmail(t *testing.T) {
	f := newProvisioningFixture(t)

	mustProvision(t, f.svc.ProvisionParent, parentInput("dup@example.com"))

	_, err := f.svc.ProvisionKid(context.Background(), kidInput("DUP@example.com"))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if f.accounts.count() != 1 || f.profiles.count(domain.RoleKid) != 0 {
		t.Fatalf("duplicate must not create records")
	}
}

func TestProvision_ValidationRejectsBeforeWrites(t *testing.T) {
	f := newProvisioningFixture(t)

	cases := []struct {
		name   string
		mutate func(*ports.ParentInput)
	}{
		{"bad email", func(in *ports.ParentInput) { in.Email = "nope" }},
		{"short password", func(in *ports.ParentInput) { in.Password = "123" }},
		{"short name", func(in *ports.ParentInput) { in.FullName = "P" }},
		{"bad gender", func(in *ports.ParentInput) { in.Gender = "x" }},
		{"bad phone", func(in *ports.ParentInput) { in.PhoneNumber = "12ab" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := parentInput("p@example.com")
			tc.mutate(&in)
			_, err := f.svc.ProvisionParent(context.Background(), in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if f.accounts.count() != 0 {
		t.Fatalf("expected no accounts, got %d", f.accounts.count())
	}
}

func TestProvision_RollsBackWhenProfileInvalid(t *testing.T) {
	f := newProvisioningFixture(t)

	in := kidInput("future@example.com")
	in.DateOfBirth = time.Now().AddDate(1, 0, 0)

	_, err := f.svc.ProvisionKid(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if f.accounts.count() != 0 {
		t.Fatalf("expected account to be rolled back, %d remain", f.accounts.count())
	}
	if len(f.accounts.deleted) != 1 {
		t.Fatalf("expected one compensating delete, got %d", len(f.accounts.deleted))
	}
	if f.profiles.count(domain.RoleKid) != 0 {
		t.Fatalf("expected no kid profile")
	}
}

func TestProvision_RollsBackWhenProfileInsertFails(t *testing.T) {
	f := newProvisioningFixture(t)
	f.profiles.insertErr = errBoom

	_, err := f.svc.ProvisionParent(context.Background(), parentInput("p@example.com"))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if f.accounts.count() != 0 {
		t.Fatalf("expected account to be rolled back")
	}

	// The email is free again.
	f.profiles.insertErr = nil
	mustProvision(t, f.svc.ProvisionParent, parentInput("p@example.com"))
}

func TestProvisionKid_LinksExistingParent(t *testing.T) {
	f := newProvisioningFixture(t)
	parent := mustProvision(t, f.svc.ProvisionParent, parentInput("p@example.com"))

	in := kidInput("k@example.com")
	in.ParentID = parent.Profile.(*domain.ParentProfile).ID
	res := mustProvision(t, f.svc.ProvisionKid, in)

	if res.Profile.(*domain.KidProfile).ParentID != in.ParentID {
		t.Fatalf("kid not linked to parent")
	}
}

func TestProvisionKid_UnknownParent(t *testing.T) {
	f := newProvisioningFixture(t)

	in := kidInput("k@example.com")
	in.ParentID = "parent-404"
	if _, err := f.svc.ProvisionKid(context.Background(), in); !errors.Is(err, domain.ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
	if f.accounts.count() != 0 {
		t.Fatalf("expected no account")
	}
}

func TestProvision_ClientDisconnectDoesNotAbortWrites(t *testing.T) {
	f := newProvisioningFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.profiles.beforeInsert = cancel

	res, err := f.svc.ProvisionParent(ctx, parentInput("p@example.com"))
	if err != nil {
		t.Fatalf("expected provisioning to complete, got %v", err)
	}
	if f.profiles.count(domain.RoleParent) != 1 || f.accounts.count() != 1 {
		t.Fatalf("expected both records, got account=%d profile=%d", f.accounts.count(), f.profiles.count(domain.RoleParent))
	}
	if res.Account.ID == "" {
		t.Fatalf("expected account id")
	}
}

func TestProvision_ConcurrentSameEmail(t *testing.T) {
	f := newProvisioningFixture(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ProvisionKid(context.Background(), kidInput("race@example.com"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrEmailTaken):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || conflicts != attempts-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d/%d", attempts-1, successes, conflicts)
	}
	if f.accounts.count() != 1 || f.profiles.count(domain.RoleKid) != 1 {
		t.Fatalf("expected exactly one identity")
	}
}
