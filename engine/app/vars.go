package app

// Vars is the typed game-variable bag owned by the play state.
// Frame-thread only.
type Vars struct {
	m map[string]any
}

func newVars() *Vars {
	return &Vars{m: make(map[string]any)}
}

// Set stores a value under a name.
func (v *Vars) Set(name string, value any) {
	v.m[name] = value
}

// Get returns the raw value and whether it exists.
func (v *Vars) Get(name string) (any, bool) {
	val, ok := v.m[name]
	return val, ok
}

// Int returns the named int, or 0 when unset or of another type.
func (v *Vars) Int(name string) int {
	if val, ok := v.m[name].(int); ok {
		return val
	}
	return 0
}

// Float returns the named float64, or 0 when unset or of another type.
func (v *Vars) Float(name string) float64 {
	if val, ok := v.m[name].(float64); ok {
		return val
	}
	return 0
}

// String returns the named string, or "" when unset or of another type.
func (v *Vars) String(name string) string {
	if val, ok := v.m[name].(string); ok {
		return val
	}
	return ""
}

// Increment adds delta to the named int and returns the new value.
func (v *Vars) Increment(name string, delta int) int {
	val := v.Int(name) + delta
	v.m[name] = val
	return val
}

// Clear drops every variable, for a new game.
func (v *Vars) Clear() {
	v.m = make(map[string]any)
}
