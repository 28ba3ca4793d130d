package settings

// EnumSetting restricts a setting's values to an allowed list. A nil list
// leaves the setting unrestricted. Out-of-list values are rejected at
// write time, never coerced.
type EnumSetting[V comparable] struct {
	Setting[V]
	allowed []V
}

// NewEnumSetting builds an enum setting. allowed may be nil for an
// unrestricted enum.
func NewEnumSetting[V comparable](key Key, def V, codec Codec[V], allowed []V) *EnumSetting[V] {
	s := &EnumSetting[V]{
		Setting: Setting[V]{
			key:   key,
			def:   def,
			codec: codec,
			act:   alwaysActive{},
		},
		allowed: append([]V(nil), allowed...),
	}
	s.validate = s.member
	return s
}

// WithActivation returns a copy of the setting using the given activator.
func (s *EnumSetting[V]) WithActivation(a Activator) *EnumSetting[V] {
	c := *s
	c.act = a
	c.validate = c.member
	return &c
}

// Allowed returns the allowed values, or nil when unrestricted.
func (s *EnumSetting[V]) Allowed() []V {
	return append([]V(nil), s.allowed...)
}

func (s *EnumSetting[V]) member(v V) (V, bool) {
	if len(s.allowed) == 0 {
		return v, true
	}
	for _, a := range s.allowed {
		if a == v {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// TogglePreference sets the value when no equal preference is stored and
// removes the key entirely when the stored value already equals it.
func (s *EnumSetting[V]) TogglePreference(p *Preferences, value V, opts ...SetOption) {
	if cur, ok := s.Get(*p); ok && cur == value {
		p.remove(s.key)
		return
	}
	s.Set(p, value, opts...)
}

// ToggleSetting is a boolean setting.
type ToggleSetting struct {
	Setting[bool]
}

// NewToggleSetting builds a boolean setting.
func NewToggleSetting(key Key, def bool) *ToggleSetting {
	return &ToggleSetting{Setting: *NewSetting(key, def, BoolCodec())}
}

// WithActivation returns a copy of the setting using the given activator.
func (s *ToggleSetting) WithActivation(a Activator) *ToggleSetting {
	c := *s
	c.act = a
	return &c
}

// Toggle flips the effective value and stores the result.
func (s *ToggleSetting) Toggle(p *Preferences, opts ...SetOption) {
	s.Set(p, !s.Resolve(*p), opts...)
}
