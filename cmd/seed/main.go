// Command seed provisions a starter admin, teacher and family. Running it
// again skips every account that already exists.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/core/service"
	"github.com/dailymate/dailymate-api/internal/infrastructure/db/mongo"
	"github.com/dailymate/dailymate-api/internal/infrastructure/hashing"
	"github.com/dailymate/dailymate-api/internal/pkg/config"
	"github.com/dailymate/dailymate-api/pkg/logger"
)

type seedConfig struct {
	Password string `env:"SEED_PASSWORD, default=ChangeMe123"`
	Domain   string `env:"SEED_DOMAIN,   default=dailymate.app"`
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "dailymate-seed"})

	var seed seedConfig
	if err := envconfig.Process(context.Background(), &seed); err != nil {
		log.Fatal().Err(err).Msg("invalid seed configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	accounts := mongo.NewAccountRepository(db)
	profiles := mongo.NewProfileRepository(db)
	if err := mongo.EnsureIndexes(ctx, accounts, profiles); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := hashing.NewPool(cfg.Hash.Workers, cfg.Hash.Cost, log)
	hasher.Start(ctx)

	s := &seeder{
		prov:     service.NewProvisioningService(accounts, profiles, hasher, mongo.NewTransactor(client, cfg.Mongo.Transactions), log),
		accounts: accounts,
		profiles: profiles,
		log:      log,
	}
	if err := s.run(ctx, seed); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
	log.Info().Msg("seeding complete")
}

type seeder struct {
	prov     ports.ProvisioningService
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func (s *seeder) run(ctx context.Context, seed seedConfig) error {
	account := func(local string) ports.AccountInput {
		return ports.AccountInput{Email: local + "@" + seed.Domain, Password: seed.Password}
	}

	if err := s.skipExisting(s.prov.ProvisionAdmin(ctx, ports.AdminInput{
		AccountInput: account("admin"),
		FullName:     "DailyMate Admin",
	})); err != nil {
		return err
	}

	if err := s.skipExisting(s.prov.ProvisionTeacher(ctx, ports.TeacherInput{
		AccountInput:    account("teacher"),
		FullName:        "Maria Lopez",
		Specializations: []string{"math", "reading"},
		Bio:             "Early-years teacher.",
	})); err != nil {
		return err
	}

	parentAccount := account("parent")
	if err := s.skipExisting(s.prov.ProvisionParent(ctx, ports.ParentInput{
		AccountInput: parentAccount,
		FullName:     "Alex Parent",
		Gender:       string(domain.GenderFemale),
	})); err != nil {
		return err
	}

	parentID, err := s.parentProfileID(ctx, parentAccount.Email)
	if err != nil {
		return err
	}
	return s.skipExisting(s.prov.ProvisionKid(ctx, ports.KidInput{
		AccountInput: account("kid"),
		FullName:     "Emma",
		DateOfBirth:  time.Date(2016, 7, 15, 0, 0, 0, 0, time.UTC),
		Gender:       string(domain.GenderFemale),
		ParentID:     parentID,
	}))
}

func (s *seeder) skipExisting(res *ports.ProvisionResult, err error) error {
	if errors.Is(err, domain.ErrEmailTaken) {
		s.log.Info().Msg("account already exists, skipping")
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info().
		Str("account_id", res.Account.ID).
		Str("email", res.Account.Email).
		Str("role", string(res.Account.Role)).
		Msg("account provisioned")
	return nil
}

func (s *seeder) parentProfileID(ctx context.Context, email string) (string, error) {
	acc, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	profile, err := s.profiles.FindByAccount(ctx, domain.RoleParent, acc.ID)
	if err != nil {
		return "", err
	}
	parent, ok := profile.(*domain.ParentProfile)
	if !ok {
		return "", domain.ErrParentNotFound
	}
	return parent.ID, nil
}
