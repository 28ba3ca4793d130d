package settings

// Key is the stable string identifier of a setting. It doubles as the
// field name in the serialized preferences document, so it must not change
// across versions.
type Key string

// Validator corrects a candidate value or rejects it. Implementations may
// return a different value than the input (range settings clamp) or report
// not-ok to drop the write entirely (enum settings reject).
type Validator[V any] func(v V) (V, bool)

// Setting describes one configurable property: identity, default value,
// codec, validator and activation rule. A Setting is immutable after
// construction; the With* methods return modified copies.
type Setting[V any] struct {
	key      Key
	def      V
	codec    Codec[V]
	validate Validator[V]
	act      Activator
}

// NewSetting builds a plain setting with the given key, default and codec.
// The setting accepts any value its codec can decode and is always active.
func NewSetting[V any](key Key, def V, codec Codec[V]) *Setting[V] {
	return &Setting[V]{
		key:      key,
		def:      def,
		codec:    codec,
		validate: func(v V) (V, bool) { return v, true },
		act:      alwaysActive{},
	}
}

// WithValidation returns a copy of the setting using the given validator.
func (s *Setting[V]) WithValidation(v Validator[V]) *Setting[V] {
	c := *s
	c.validate = v
	return &c
}

// WithActivation returns a copy of the setting using the given activator.
func (s *Setting[V]) WithActivation(a Activator) *Setting[V] {
	c := *s
	c.act = a
	return &c
}

// Key returns the setting's identifier.
func (s *Setting[V]) Key() Key { return s.key }

// Default returns the value used when no valid preference is stored.
func (s *Setting[V]) Default() V { return s.def }

// Validate runs the setting's validator, returning the corrected value or
// not-ok when the value is rejected.
func (s *Setting[V]) Validate(v V) (V, bool) { return s.validate(v) }

// Activator returns the setting's activation rule.
func (s *Setting[V]) Activator() Activator { return s.act }

// Get returns the preference stored for this setting, decoded and passed
// through the validator. A stored value that no longer decodes or
// validates is treated as absent.
func (s *Setting[V]) Get(p Preferences) (V, bool) {
	raw, ok := p.raw(s.key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := s.codec.Decode(raw)
	if !ok {
		var zero V
		return zero, false
	}
	return s.validate(v)
}

// Resolve returns the stored preference, falling back to the default.
func (s *Setting[V]) Resolve(p Preferences) V {
	if v, ok := s.Get(p); ok {
		return v
	}
	return s.def
}

// IsActive reports whether the setting currently takes effect, i.e. its
// prerequisite settings hold compatible values.
func (s *Setting[V]) IsActive(p Preferences) bool {
	return s.act.IsActive(p)
}

// Effective returns the value a presentation layer should apply: the
// stored preference when present and active, the default otherwise.
func (s *Setting[V]) Effective(p Preferences) V {
	if !s.act.IsActive(p) {
		return s.def
	}
	return s.Resolve(p)
}

// Set validates, encodes and stores the value. A value the validator
// rejects removes the key instead, as if it were never set. Unless
// suppressed with WithoutActivation, storing a value triggers the
// setting's activation effect so that the preference takes effect.
func (s *Setting[V]) Set(p *Preferences, value V, opts ...SetOption) {
	cfg := newSetConfig(opts)
	v, ok := s.validate(value)
	if !ok {
		p.remove(s.key)
		return
	}
	p.set(s.key, s.codec.Encode(v))
	if cfg.activate {
		s.activate(p)
	}
}

// SetOptional stores the value when non-nil and removes the key otherwise.
func (s *Setting[V]) SetOptional(p *Preferences, value *V, opts ...SetOption) {
	if value == nil {
		p.remove(s.key)
		return
	}
	s.Set(p, *value, opts...)
}

// Remove deletes the preference stored for this setting.
func (s *Setting[V]) Remove(p *Preferences) {
	p.remove(s.key)
}

// activate runs the activation effect until the predicate holds.
func (s *Setting[V]) activate(p *Preferences) {
	if !s.act.IsActive(*p) {
		s.act.Activate(p)
	}
}

// SetOption configures a single Set call.
type SetOption func(*setConfig)

type setConfig struct {
	activate bool
}

func newSetConfig(opts []SetOption) setConfig {
	cfg := setConfig{activate: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithoutActivation suppresses the activation side effect of a Set call,
// storing the preference without touching prerequisite settings.
func WithoutActivation() SetOption {
	return func(c *setConfig) {
		c.activate = false
	}
}
