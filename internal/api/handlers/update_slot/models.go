package update_slot

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Available bool `json:"available"`
}
