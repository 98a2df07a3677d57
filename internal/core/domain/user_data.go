package domain

// UserData aggregates everything the driver app shows on its home screen.
// Vehicle, CurrentOrder and Location are nil when the driver has none; the
// HTTP layer substitutes neutral placeholders.
type UserData struct {
	User         User
	Vehicle      *Vehicle
	CurrentOrder *Order
	Location     *Location
}
