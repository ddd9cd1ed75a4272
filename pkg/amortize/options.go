package amortize

const (
	// DefaultTolerance is the accepted distance, in periods, between the
	// simulated payoff time and the target.
	DefaultTolerance = 1e-5
	// DefaultMaxIterations bounds the bisection steps of the solver.
	DefaultMaxIterations = 200
	// DefaultMaxPeriods bounds the periods a single simulation may run.
	DefaultMaxPeriods = 100_000
)

// An Option tunes a simulation or a search.
type Option func(*config)

// WithTolerance sets the convergence tolerance of the solver, in periods.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithMaxIterations sets how many bisection steps the solver may take.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithMaxPeriods sets how many periods a simulation may run before giving up.
func WithMaxPeriods(n int) Option {
	return func(c *config) { c.maxPeriods = n }
}

// WithLogger traces the search or the schedule to the given logger.
func WithLogger(log Logger) Option {
	return func(c *config) { c.log = log }
}

type config struct {
	tolerance     float64
	maxIterations int
	maxPeriods    int
	log           Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		maxPeriods:    DefaultMaxPeriods,
		log:           LogMute(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = LogMute()
	}
	return cfg
}
