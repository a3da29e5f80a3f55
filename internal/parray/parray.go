package parray

// Canonical field names shared by the equations and the engine. Arrays may
// carry extra fields; equations bind only what they declare.
const (
	FieldX   = "x"
	FieldY   = "y"
	FieldZ   = "z"
	FieldU   = "u"
	FieldV   = "v"
	FieldW   = "w"
	FieldM   = "m"
	FieldRho = "rho"
	FieldP   = "p"
	FieldCs  = "cs"
	FieldH   = "h"

	FieldAu   = "au"
	FieldAv   = "av"
	FieldAw   = "aw"
	FieldAx   = "ax"
	FieldAy   = "ay"
	FieldAz   = "az"
	FieldArho = "arho"

	FieldV00 = "v00"
	FieldV01 = "v01"
	FieldV10 = "v10"
	FieldV11 = "v11"
)

// StandardFields is the field set a fluid particle group carries by default.
var StandardFields = []string{
	FieldX, FieldY, FieldZ,
	FieldU, FieldV, FieldW,
	FieldM, FieldRho, FieldP, FieldCs, FieldH,
	FieldAu, FieldAv, FieldAw,
	FieldAx, FieldAy, FieldAz,
	FieldArho,
	FieldV00, FieldV01, FieldV10, FieldV11,
}

// Array is a named group of per-particle scalar fields, one slice per
// physical property, one slot per particle. The engine owns arrays;
// equations bind field slices once at setup and then read/mutate by index.
type Array struct {
	name   string
	n      int
	fields map[string][]float64
}

// New creates an array of n particles carrying the given fields, all zeroed.
func New(name string, n int, fields ...string) *Array {
	a := &Array{
		name:   name,
		n:      n,
		fields: make(map[string][]float64, len(fields)),
	}
	for _, f := range fields {
		a.fields[f] = make([]float64, n)
	}
	return a
}

func (a *Array) Name() string { return a.name }
func (a *Array) Len() int     { return a.n }

// Has reports whether the array carries the named field.
func (a *Array) Has(field string) bool {
	_, ok := a.fields[field]
	return ok
}

// Field returns the backing slice for the named field. A missing field is a
// configuration error; callers surface it before any stepping begins.
func (a *Array) Field(field string) ([]float64, error) {
	s, ok := a.fields[field]
	if !ok {
		return nil, &FieldError{Array: a.name, Field: field, Wrapped: ErrMissingField}
	}
	return s, nil
}

// AddField attaches a zeroed field sized to the particle count. Adding an
// existing field is a no-op.
func (a *Array) AddField(field string) {
	if _, ok := a.fields[field]; !ok {
		a.fields[field] = make([]float64, a.n)
	}
}

// Set copies values into the named field.
func (a *Array) Set(field string, values []float64) error {
	s, err := a.Field(field)
	if err != nil {
		return err
	}
	copy(s, values)
	return nil
}

// Fill sets every slot of the named field to v.
func (a *Array) Fill(field string, v float64) error {
	s, err := a.Field(field)
	if err != nil {
		return err
	}
	for i := range s {
		s[i] = v
	}
	return nil
}
