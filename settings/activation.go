package settings

// Activator models the conditional-effect rule of a setting. IsActive
// reports whether the setting's preference currently takes effect;
// Activate mutates the preferences until IsActive holds, typically by
// forcing a prerequisite setting into a compatible state.
type Activator interface {
	IsActive(p Preferences) bool
	Activate(p *Preferences)
}

// alwaysActive is the activator of settings without prerequisites.
type alwaysActive struct{}

func (alwaysActive) IsActive(Preferences) bool { return true }
func (alwaysActive) Activate(*Preferences)     {}

// requireToggle activates by forcing a prerequisite toggle to a value.
type requireToggle struct {
	setting *ToggleSetting
	want    bool
}

// RequireEnabled returns an activator whose setting only takes effect
// while the given toggle resolves to true. Activation forces it on.
func RequireEnabled(s *ToggleSetting) Activator {
	return requireToggle{setting: s, want: true}
}

// RequireDisabled returns an activator whose setting only takes effect
// while the given toggle resolves to false. Activation forces it off.
func RequireDisabled(s *ToggleSetting) Activator {
	return requireToggle{setting: s, want: false}
}

func (a requireToggle) IsActive(p Preferences) bool {
	return a.setting.Effective(p) == a.want
}

func (a requireToggle) Activate(p *Preferences) {
	// The prerequisite's own activation is skipped to keep the effect
	// local and loop-free.
	a.setting.Set(p, a.want, WithoutActivation())
}
