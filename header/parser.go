package header

import (
	"errors"
	"time"

	"braces.dev/errtrace"

	"github.com/zostay/go-email-header/header/consumer"
	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/part"
)

// Errors returned by the parsing functions and the Header getters.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned by Header methods when the
	// operation being performed failed because the header exists, but a
	// sub-field of the header does not exist.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrNoDate is returned when a date field does not hold a date that
	// could be parsed.
	ErrNoDate = errors.New("no date found in field")
)

// Parser parses field bodies into parts. The zero value is not usable, use
// NewParser. A Parser is safe for concurrent use.
type Parser struct {
	set *consumer.Set
}

// NewParser returns a parser configured by the given options.
func NewParser(opts ...consumer.Option) *Parser {
	return &Parser{set: consumer.NewSet(opts...)}
}

// DefaultParser is the Parser used by the package level functions. It is
// lenient about charsets.
var DefaultParser = NewParser()

func (p *Parser) consumer(k Kind) *consumer.Consumer {
	switch k {
	case KindSubject:
		return p.set.Subject
	case KindAddress:
		return p.set.Address
	case KindDate:
		return p.set.Date
	case KindID:
		return p.set.ID
	case KindParameter:
		return p.set.Parameter
	case KindReceived:
		return p.set.Received
	default:
		return p.set.Generic
	}
}

// Parse parses body with the grammar for the given kind. The parts are
// returned even when there is an error, which only happens when the parser
// is strict about charsets.
func (p *Parser) Parse(k Kind, body string) ([]part.Part, error) {
	ps, err := p.consumer(k).Parse(body)
	return ps, errtrace.Wrap(err)
}

// ParseField parses the body of f with the grammar for its name.
func (p *Parser) ParseField(f *field.Base) ([]part.Part, error) {
	return errtrace.Wrap2(p.Parse(KindOf(f.Name()), f.Body()))
}

// Time parses body as a date. It returns ErrNoDate if no date can be found.
func (p *Parser) Time(body string) (time.Time, error) {
	ps, err := p.Parse(KindDate, body)
	if err != nil {
		return time.Time{}, err
	}

	for _, pt := range ps {
		if d, isDate := pt.(*part.Date); isDate {
			if t, ok := d.Time(); ok {
				return t, nil
			}
		}
	}

	return time.Time{}, errtrace.Wrap(ErrNoDate)
}

// MessageIDs parses body as a list of message IDs and returns them without
// angle brackets.
func (p *Parser) MessageIDs(body string) ([]string, error) {
	ps, err := p.Parse(KindID, body)

	ids := make([]string, 0, len(ps))
	for _, pt := range ps {
		if id, isID := pt.(*part.ID); isID {
			ids = append(ids, id.Value())
		}
	}

	return ids, err
}

// Text parses body as unstructured text and returns it decoded. Comments
// are dropped when the kind gives them meaning.
func (p *Parser) Text(k Kind, body string) (string, error) {
	ps, err := p.Parse(k, body)

	var s []byte
	for _, pt := range ps {
		if _, isComment := pt.(*part.Comment); isComment {
			continue
		}
		if len(s) > 0 {
			s = append(s, ' ')
		}
		s = append(s, pt.Value()...)
	}

	return string(s), err
}

// Parse parses body with DefaultParser.
func Parse(k Kind, body string) ([]part.Part, error) {
	return DefaultParser.Parse(k, body)
}

// ParseField parses f with DefaultParser.
func ParseField(f *field.Base) ([]part.Part, error) {
	return DefaultParser.ParseField(f)
}

// ParseTime parses body as a date with DefaultParser. It tries RFC 5322
// first and then many other formats.
func ParseTime(body string) (time.Time, error) {
	return DefaultParser.Time(body)
}

// ParseMessageIDs parses a list of message IDs with DefaultParser.
func ParseMessageIDs(body string) ([]string, error) {
	return DefaultParser.MessageIDs(body)
}
