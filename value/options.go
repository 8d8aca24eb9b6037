package value

// Options carries the per-instance policy flags. Both default to false and are
// fixed for the lifetime of a value.
type Options struct {
	Nullable  bool
	Immutable bool
}

// Option configures Options.
type Option func(*Options)

// Nullable allows the value to hold null.
func Nullable() Option {
	return func(o *Options) { o.Nullable = true }
}

// Immutable forbids every write after construction.
func Immutable() Option {
	return func(o *Options) { o.Immutable = true }
}

// WithOptions replaces the whole option set.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// NewOptions applies opts over the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// First returns a pointer to the first element of raw, or nil when raw is empty.
// It backs the Nullable* constructors whose raw argument is optional.
func First[T any](raw []T) *T {
	if len(raw) == 0 {
		return nil
	}
	v := raw[0]
	return &v
}
