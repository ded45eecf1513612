package field

// Option is a ready-made option object. Renderers recognise it directly, so
// no property selectors are needed when Options is a []Option.
type Option struct {
	Value    string
	Label    string
	Group    string
	Disabled bool
}

// NewOption builds an enabled option with the same value and label.
func NewOption(value string) Option {
	return Option{Value: value, Label: value}
}

// Enabled reports whether the option may be chosen.
func (o Option) Enabled() bool {
	return !o.Disabled
}

// DisplayLabel returns Label, falling back to Value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}
