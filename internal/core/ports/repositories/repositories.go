package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass them around as one unit.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	SessionLogRepo SessionLogRepository
	VehicleRepo    VehicleRepository
	OrderRepo      OrderRepository
	LocationRepo   LocationRepository
}
