// Package field defines the input declaration consumed by renderers and the
// Field wrapper used as a binding target. An Input describes one dynamic
// form control: its HTML type, current value, the candidate options and any
// extra attributes. Option selectors (ValueProperty, LabelProperty,
// GroupProperty, EnabledProperty) name the property of each option object
// that supplies the value, label, group and enabled flag; when unset,
// renderers fall back to the option's string form, an empty group and an
// enabled state.
package field
