package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"pcdir/internal/directory/models"
	"pcdir/internal/directory/service"
	person "pcdir/internal/person/models"
)

// Seeder populates a directory with the demo fleet.
type Seeder struct {
	directory *service.DirectoryService
	logger    *slog.Logger
}

// New creates a new seeder.
func New(directory *service.DirectoryService, logger *slog.Logger) *Seeder {
	return &Seeder{directory: directory, logger: logger}
}

type fleetMember struct {
	first       string
	last        string
	email       string
	affiliation person.Affiliation
	os          models.OperatingSystem
	hardware    models.Hardware
}

// SeedFleet adds the demo machines to the directory.
func (s *Seeder) SeedFleet(ctx context.Context) error {
	s.logger.Info("seeding demo fleet")

	linux6 := models.Linux(6, 22)
	macos10 := models.MacOS(10, 14)
	superIncome := person.EmployeeAffiliation(10)
	midIncome := person.EmployeeAffiliation(5)
	contractor := person.ContractorAffiliation("minisoft")

	fleet := []fleetMember{
		{"Maria", "Dingdong", "maria@dingong.com", superIncome, models.Windows(models.OSWindows11), models.BeefyWorkstation()},
		{"Hans", "Overkill", "hans@overkill.com", superIncome, linux6, models.NerdWorkstation()},
		{"Sue", "Sensible", "sue@whatever.com", person.InternAffiliation(), macos10, models.BeefyWorkstation()},
		{"Don", "Drumpf", "don@drumpf.com", midIncome, models.Windows(models.OSWindowsVista), models.NormalHardware()},
		{"Lex", "Long", "lexlong@voll.com", contractor, models.Windows(models.OSWindowsVista), models.NormalHardware()},
		{"Karl", "Keule", "karl@keule.com", superIncome, linux6, models.NerdWorkstation()},
	}

	for _, m := range fleet {
		owner, err := person.NewPersonBuilder().
			WithFirstName(m.first).
			WithLastName(m.last).
			WithEmailAddress(m.email).
			WithAffiliation(m.affiliation).
			Build()
		if err != nil {
			return fmt.Errorf("failed to build owner %s %s: %w", m.first, m.last, err)
		}

		builder := models.NewPCBuilder().
			WithOwner(owner).
			WithOS(m.os).
			WithHardware(m.hardware)
		if err := s.directory.AddPC(ctx, *builder); err != nil {
			return fmt.Errorf("failed to seed pc for %s: %w", m.email, err)
		}
	}

	s.logger.Info("demo fleet seeded", slog.Int("pcs", len(fleet)))
	return nil
}
