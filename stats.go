package probingmap

// Stats is a point-in-time snapshot of a table's shape.
type Stats struct {
	Count           int
	Capacity        int
	LoadFactor      float64
	GrowthThreshold float64

	// Number of growths since construction.
	Growths int
	// Number of entries re-inserted by deletion repair.
	Repairs int
	// Longest probe distance among live entries, 0 means every entry sits
	// at its first probe.
	LongestProbe int
}
