package sat

// Options configures a Solver at construction.
type Options struct {
	// VariableDecay is the VSIDS activity decay factor, in (0, 1).
	VariableDecay float64

	// ClauseDecay is the learnt clause activity decay factor, in (0, 1).
	ClauseDecay float64

	// LubyRestart selects the Luby sequence for the outer restart schedule.
	// When false, the schedule is geometric with ratio 1.5.
	LubyRestart bool

	// GCFrac is the fraction of wasted arena storage that triggers a
	// garbage collection.
	GCFrac float64

	// FirstReduceDB is the number of conflicts before the first learnt
	// clause database reduction. After the k-th reduction, the next one is
	// scheduled FirstReduceDB + 1000*k conflicts later.
	FirstReduceDB int64

	// Verbosity controls progress output: 0 is silent, 1 prints periodic
	// search statistics, 2 adds garbage collection reports.
	Verbosity int
}

var DefaultOptions = Options{
	VariableDecay: 0.95,
	ClauseDecay:   0.999,
	LubyRestart:   true,
	GCFrac:        0.20,
	FirstReduceDB: 2000,
	Verbosity:     0,
}
