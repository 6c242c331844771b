package domain

// Catalog is the fixed set of labels offered by the form selectors.
type Catalog struct {
	Jobs      []string `json:"jobs" yaml:"jobs"`
	TimeSlots []string `json:"timeSlots" yaml:"time_slots"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Jobs: []string{
			"Dog Walk (30 min)",
			"Dog Wash (1 hr)",
			"Dog Daycare (4 hr morning)",
			"Dog Daycare (4 hr afternoon)",
			"Dog Daycare (8 hr)",
			"HVAC repair (2 hr)",
			"Grocery Shopping (2 hr)",
		},
		TimeSlots: []string{"9AM - 11AM", "1PM - 3PM", "3PM - 5PM"},
	}
}
