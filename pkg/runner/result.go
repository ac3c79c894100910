package runner

// Stats captures aggregate information about a run.
type Stats struct {
	// InputBytes is the size of the source document.
	InputBytes int

	// AggregateBytes is the size of the generated aggregate page.
	AggregateBytes int

	// SymbolPages is the number of per-symbol pages written.
	SymbolPages int
}

// Result is the overall outcome of a generation run.
type Result struct {
	// AggregatePath is where the aggregate page was written.
	AggregatePath string

	// PagePaths lists the per-symbol pages written, in input order.
	PagePaths []string

	// Symbols lists the documented symbol names, in input order.
	Symbols []string

	// Stats holds aggregate statistics for the run.
	Stats Stats
}
