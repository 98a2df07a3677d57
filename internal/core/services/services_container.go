package services

import (
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	googleSvc := NewGoogleAuthService(cfg)

	return &portssvc.ServiceContainer{
		Token:      tokenSvc,
		GoogleAuth: googleSvc,
		Auth:       NewAuthService(cfg, repos.UserRepo, repos.SessionLogRepo, tokenSvc, googleSvc),
		User:       NewUserService(repos.UserRepo, repos.VehicleRepo, repos.OrderRepo, repos.LocationRepo),
		Vehicle:    NewVehicleService(repos.VehicleRepo, repos.UserRepo),
		Order:      NewOrderService(repos.OrderRepo, repos.UserRepo),
		Location:   NewLocationService(repos.LocationRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.VehicleSvcFacade  = (*vehicleService)(nil)
	_ portssvc.OrderSvcFacade    = (*orderService)(nil)
	_ portssvc.LocationSvcFacade = (*locationService)(nil)
)
