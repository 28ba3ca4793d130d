package settings

import "slices"

// RangeSetting constrains a numeric setting to a closed range. Validation
// clamps out-of-range values instead of rejecting them, so a write always
// lands inside [Min, Max].
//
// Optional suggested steps (ascending) drive the stepped Increment and
// Decrement operations; without steps a suggested fixed increment, or the
// type-default fallback, is added and the result clamped.
type RangeSetting[V Numeric] struct {
	Setting[V]
	min       V
	max       V
	steps     []V
	increment V
	hasInc    bool
}

// RangeOption configures a RangeSetting at construction.
type RangeOption[V Numeric] func(*RangeSetting[V])

// WithSuggestedSteps sets the discrete progression used by Increment and
// Decrement. Steps are kept sorted ascending.
func WithSuggestedSteps[V Numeric](steps ...V) RangeOption[V] {
	return func(s *RangeSetting[V]) {
		s.steps = append([]V(nil), steps...)
		slices.Sort(s.steps)
	}
}

// WithSuggestedIncrement sets the fixed amount Increment and Decrement use
// when no steps are configured.
func WithSuggestedIncrement[V Numeric](inc V) RangeOption[V] {
	return func(s *RangeSetting[V]) {
		s.increment = inc
		s.hasInc = true
	}
}

// NewRangeSetting builds a numeric setting clamped to [min, max]. The
// default itself is clamped into the range.
func NewRangeSetting[V Numeric](key Key, def, min, max V, opts ...RangeOption[V]) *RangeSetting[V] {
	if max < min {
		min, max = max, min
	}
	s := &RangeSetting[V]{
		Setting: Setting[V]{
			key:   key,
			codec: NumberCodec[V](),
			act:   alwaysActive{},
		},
		min: min,
		max: max,
	}
	s.validate = func(v V) (V, bool) { return clamp(v, min, max), true }
	s.def = clamp(def, min, max)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithActivation returns a copy of the setting using the given activator.
func (s *RangeSetting[V]) WithActivation(a Activator) *RangeSetting[V] {
	c := *s
	c.act = a
	c.steps = append([]V(nil), s.steps...)
	return &c
}

// Min returns the lower bound of the range.
func (s *RangeSetting[V]) Min() V { return s.min }

// Max returns the upper bound of the range.
func (s *RangeSetting[V]) Max() V { return s.max }

// SuggestedSteps returns the configured step list, ascending.
func (s *RangeSetting[V]) SuggestedSteps() []V {
	return append([]V(nil), s.steps...)
}

// SuggestedIncrement returns the configured fixed increment, or not-ok.
func (s *RangeSetting[V]) SuggestedIncrement() (V, bool) {
	return s.increment, s.hasInc
}

// Increment stores the next value up from the current one: the first step
// strictly greater than it, or current plus the suggested increment (or
// the type default), clamped to the range.
func (s *RangeSetting[V]) Increment(p *Preferences, opts ...SetOption) {
	s.Set(p, s.nextUp(s.Resolve(*p)), opts...)
}

// Decrement stores the next value down from the current one: the last
// step strictly lesser than it, or current minus the suggested increment
// (or the type default), clamped to the range.
func (s *RangeSetting[V]) Decrement(p *Preferences, opts ...SetOption) {
	s.Set(p, s.nextDown(s.Resolve(*p)), opts...)
}

// IncrementBy adds the caller-supplied amount, ignoring steps, and clamps.
func (s *RangeSetting[V]) IncrementBy(p *Preferences, amount V, opts ...SetOption) {
	s.Set(p, s.Resolve(*p)+amount, opts...)
}

// DecrementBy subtracts the caller-supplied amount, ignoring steps, and
// clamps.
func (s *RangeSetting[V]) DecrementBy(p *Preferences, amount V, opts ...SetOption) {
	s.Set(p, s.Resolve(*p)-amount, opts...)
}

// AdjustBy adds an arbitrary signed delta and clamps.
func (s *RangeSetting[V]) AdjustBy(p *Preferences, delta V, opts ...SetOption) {
	s.Set(p, s.Resolve(*p)+delta, opts...)
}

func (s *RangeSetting[V]) nextUp(cur V) V {
	if len(s.steps) > 0 {
		for _, step := range s.steps {
			if step > cur {
				return clamp(step, s.min, s.max)
			}
		}
		return s.max
	}
	return clamp(cur+s.stepAmount(), s.min, s.max)
}

func (s *RangeSetting[V]) nextDown(cur V) V {
	if len(s.steps) > 0 {
		for i := len(s.steps) - 1; i >= 0; i-- {
			if s.steps[i] < cur {
				return clamp(s.steps[i], s.min, s.max)
			}
		}
		return s.min
	}
	return clamp(cur-s.stepAmount(), s.min, s.max)
}

func (s *RangeSetting[V]) stepAmount() V {
	if s.hasInc {
		return s.increment
	}
	return defaultIncrement[V]()
}

func clamp[V Numeric](v, lo, hi V) V {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
