// Package seed registers demo members from a JSON file into an empty database.
package seed

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"dating/config"
	"dating/internal/domain/entity"
	"dating/internal/domain/repository"
	"dating/internal/errors"
	"dating/internal/usecase"

	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// Member is one entry of the seed file.
type Member struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	AccountRepo repository.AccountRepository
	AccountUC   usecase.AccountUsecase
	MemberUC    usecase.MemberUsecase
}

// Register seeds on start when a seed file is configured. The hook runs after the
// database hooks, so the schema already exists.
func Register(params Params) {
	if params.Config.Seed == nil || params.Config.Seed.Path == "" {
		return
	}

	seeder := NewSeeder(params.AccountRepo, params.AccountUC, params.MemberUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			members, err := ReadFile(params.Config.Seed.Path)
			if err != nil {
				return err
			}

			_, err = seeder.Seed(ctx, members)

			return err
		},
	})
}

// ReadFile parses a seed file.
func ReadFile(path string) ([]Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var members []Member
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}

	return members, nil
}

// Seeder registers members through the same path as the public registration endpoint.
type Seeder struct {
	accountRepo repository.AccountRepository
	accountUC   usecase.AccountUsecase
	memberUC    usecase.MemberUsecase
	logger      *slog.Logger
}

func NewSeeder(accountRepo repository.AccountRepository, accountUC usecase.AccountUsecase, memberUC usecase.MemberUsecase, logger *slog.Logger) *Seeder {
	return &Seeder{accountRepo: accountRepo, accountUC: accountUC, memberUC: memberUC, logger: logger}
}

// Seed registers every member unless an account already exists. It returns how many were created.
func (s *Seeder) Seed(ctx context.Context, members []Member) (int, error) {
	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "count accounts")
	}
	if count > 0 {
		s.logger.InfoContext(ctx, "Skipping seed, accounts already exist", slog.Int64("accounts", count))

		return 0, nil
	}

	for i, member := range members {
		input := usecase.RegisterInput{
			Email:       member.Email,
			DisplayName: member.DisplayName,
			Password:    member.Password,
			Gender:      member.Gender,
			City:        member.City,
			Country:     member.Country,
		}
		if member.DateOfBirth != "" {
			dob, err := time.Parse(dateLayout, member.DateOfBirth)
			if err != nil {
				return i, errors.Wrapf(err, "seed member %s: dateOfBirth", member.Email)
			}
			input.DateOfBirth = dob
		}

		out, err := s.accountUC.Register(ctx, input)
		if err != nil {
			return i, errors.Wrapf(err, "seed member %s", member.Email)
		}

		if member.Description != "" {
			description := member.Description
			if err := s.memberUC.UpdateMember(ctx, out.Account.ID, entity.MemberUpdate{Description: &description}); err != nil {
				return i, errors.Wrapf(err, "seed member %s: description", member.Email)
			}
		}
	}

	s.logger.InfoContext(ctx, "Seeded members", slog.Int("count", len(members)))

	return len(members), nil
}
