package entities

// ProviderLocation is a provider's last reported position in the supply
// index. DistanceKm is filled on proximity queries.
type ProviderLocation struct {
	ProviderID string
	Role       Role
	Lat        float64
	Lng        float64
	DistanceKm float64
}
