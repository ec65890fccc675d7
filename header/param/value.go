package param

import (
	"errors"
	"sort"
	"strings"

	"braces.dev/errtrace"

	"github.com/zostay/go-email-header/header/consumer"
	"github.com/zostay/go-email-header/header/part"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in the
	// Content-type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be present in the
	// Content-disposition header.
	Filename = "filename"

	// Name is the name of the name parameter that older mailers put on the
	// Content-type header in place of a Content-disposition filename.
	Name = "name"
)

// ErrMissingValue is returned by Parse when the field has parameters but no
// primary value in front of them.
var ErrMissingValue = errors.New("parameterized field has no value")

var parameters = consumer.NewSet().Parameter

// Value represents a parsed parameterized header field, such as is used in the
// Content-type and Content-disposition headers. A Value object is immutable:
// You cannot change it in place. However, a Modify() function is provided to
// perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps map[string]string
}

// Parse takes a header field body, parses it as a Value and returns it. The
// parser is forgiving, so the only error is ErrMissingValue, returned along
// with whatever parameters were found.
func Parse(v string) (*Value, error) {
	ps, err := parameters.Parse(v)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	pv := FromParts(ps)
	if pv.v == "" {
		return pv, errtrace.Wrap(ErrMissingValue)
	}

	return pv, nil
}

// FromParts builds a Value from the output of the parameter grammar. The
// first literal is the primary value. Parameter names are lowercased and the
// first parameter with a given name wins, except that an RFC 2231 extended
// parameter replaces a plain one of the same name, since mailers send the
// plain form as a fallback for readers that do not know RFC 2231.
func FromParts(ps []part.Part) *Value {
	pv := &Value{ps: map[string]string{}}
	extended := map[string]bool{}
	for _, p := range ps {
		switch p := p.(type) {
		case *part.Literal:
			if pv.v == "" {
				pv.v = p.Value()
			}
		case *part.Parameter:
			k := strings.ToLower(p.Name())
			if _, exists := pv.ps[k]; !exists || (p.Extended() && !extended[k]) {
				pv.ps[k] = p.Value()
				extended[k] = p.Extended()
			}
		}
	}
	return pv
}

// New creates a new parameterized header field with the given parameters, if
// any. The parameter maps are merged and the names lowercased.
func New(v string, ps ...map[string]string) *Value {
	pv := &Value{v, map[string]string{}}
	for _, m := range ps {
		for k, pval := range m {
			pv.ps[strings.ToLower(k)] = pval
		}
	}
	return pv
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[strings.ToLower(name)] = value
	}
}

// Delete is a Modifier that removes the parameter with the given name from the
// Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, strings.ToLower(name))
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value. You can pass multiple changes to this function:
//
//	v, _ := param.Parse("multipart/mixed; boundary=abc123; charset=latin1")
//	nv := param.Modify(v, param.Change("multipart/alternate"), param.Set("charset", "utf-8"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value of the Value. This is the value before the
// first semi-colon.
func (pv *Value) Value() string {
	return pv.v
}

// Presentation is a synonym for Value() and returns the Content-disposition,
// either "inline" or "attachment".
func (pv *Value) Presentation() string {
	return pv.v
}

// MediaType is a synonym for Value() and returns the Content-type value, e.g.,
// "text/html", "image/jpeg", "multipart/mixed", etc.
func (pv *Value) MediaType() string {
	return pv.v
}

// Type is only intended for use with the Content-type header. It searches the
// MediaType() for a slash. If found, it will return the string before that
// slash. If no slash is found, it returns an empty string.
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype is only intended for use with the Content-type header. It returns
// the part of MediaType() after the slash, or an empty string.
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameters encoded on this Value as a map. Do not
// modify this map. If you need to modify it, make a copy first.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	return pv.ps[strings.ToLower(k)]
}

// Filename returns the value of the "filename" parameter. It is intended for
// use with the Content-disposition header. If there is no filename, the
// "name" parameter is returned instead.
func (pv *Value) Filename() string {
	if f, ok := pv.ps[Filename]; ok {
		return f
	}
	return pv.ps[Name]
}

// Charset returns the value of the "charset" parameter. It is intended for use
// with the Content-type header.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the value of the "boundary" parameter. It is intended for
// use with the Content-type header.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String returns the serialized value of the Value including the primary value
// and all parameters, sorted by name. Values are quoted when they need it and
// written in RFC 2231 form when they are not ASCII.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	parts := make([]string, len(pv.ps)+1)
	parts[0] = pv.v

	for n, k := range pks {
		parts[n+1] = part.NewParameter(k, pv.ps[k]).String()
	}

	return strings.Join(parts, "; ")
}

// Bytes returns the serialized value of the Value including the primary value
// and all parameters.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	c := Value{v: pv.v, ps: make(map[string]string, len(pv.ps))}
	for k, v := range pv.ps {
		c.ps[k] = v
	}
	return &c
}
