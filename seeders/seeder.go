package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gym-system/internal/repositories"
)

// Run wipes the gym tables and loads the demo data set through the regular
// repositories, so seeded rows go through the same write path as API
// writes.
func Run(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := db.Exec(ctx, "TRUNCATE equipment, trainers, members RESTART IDENTITY"); err != nil {
		return err
	}
	logger.Info("cleared existing data")

	trainerRepo := repositories.NewTrainerRepository(db)
	for _, payload := range trainerSeeds {
		if _, err := trainerRepo.CreateTrainer(ctx, payload); err != nil {
			return err
		}
	}
	logger.Info("seeded trainers", zap.Int("count", len(trainerSeeds)))

	memberRepo := repositories.NewMemberRepository(db)
	for _, payload := range memberSeeds {
		if _, err := memberRepo.CreateMember(ctx, payload); err != nil {
			return err
		}
	}
	logger.Info("seeded members", zap.Int("count", len(memberSeeds)))

	equipmentRepo := repositories.NewEquipmentRepository(db)
	for _, payload := range equipmentSeeds {
		if _, err := equipmentRepo.CreateEquipment(ctx, payload, ""); err != nil {
			return err
		}
	}
	logger.Info("seeded equipment", zap.Int("count", len(equipmentSeeds)))

	return nil
}
