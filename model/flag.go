package model

type Flags struct {
	// Subscription overrides the default subscription ID from the environment.
	Subscription string

	// All enables the full detector set; by default only the NIC, disk and
	// public IP detectors run.
	All bool

	// Costs shows month-to-date billed spend next to the estimates.
	Costs bool

	// Export writes an xlsx report; Output overrides the default path.
	Export bool
	CSV    bool
	Output string

	// Filter narrows the displayed rows by name/resource group substring.
	Filter string

	// SortAscending flips the default cost-descending table order.
	SortAscending bool

	Verbose bool
}
