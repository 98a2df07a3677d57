package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	sessionLogRepo := newPgxSessionLogRepository(dbPool)
	vehicleRepo := newPgxVehicleRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool, userRepo)
	locationRepo := newPgxLocationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		SessionLogRepo: sessionLogRepo,
		VehicleRepo:    vehicleRepo,
		OrderRepo:      orderRepo,
		LocationRepo:   locationRepo,
	}
}
