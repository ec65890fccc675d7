package header

import (
	"errors"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/param"
	"github.com/zostay/go-email-header/header/part"
)

// Header is a parsed message header. It holds the fields in the order they
// appeared and provides getters that parse the field bodies into useful
// values using the grammar for each field.
//
// The getter methods will return ErrNoSuchField if the field being fetched
// has not been set on the header. Getters for singular values return
// ErrManyFields along with the value of the first field if the field
// occurs more than once.
//
// A Header caches the values it parses and is not safe for concurrent use.
type Header struct {
	lbr    Break
	fields []*field.Base
	parser *Parser

	// valueCache holds the semantic value for a header, keyed by lowercase
	// field name and the kind of value. It must only hold immutable values,
	// or values that are copied on the way out.
	valueCache map[string]any
}

// ParseHeader will parse the given slice of bytes into a header using the
// given line break string. It will assume the entire input given represents
// the header to be parsed.
//
// If the input begins with text that is not a header field, that text is
// skipped and returned in a *field.BadStartError along with the Header.
func (p *Parser) ParseHeader(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, field.Break(lb))

	var badStartErr *field.BadStartError // recoverable
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, errtrace.Wrap(err)
	}

	fields := make([]*field.Base, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, field.Break(lb))
	}

	return &Header{
		lbr:    lb,
		fields: fields,
		parser: p,
	}, finalErr
}

// ParseHeader parses a header with DefaultParser.
func ParseHeader(m []byte, lb Break) (*Header, error) {
	return DefaultParser.ParseHeader(m, lb)
}

// Break returns the line break the header was parsed with.
func (h *Header) Break() Break {
	return h.lbr
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field, counting from 0.
func (h *Header) GetField(n int) *field.Base {
	return h.fields[n]
}

// GetIndexesNamed returns the indexes of the fields with the given name,
// matched without regard to case.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// GetAllFieldsNamed returns the fields with the given name.
func (h *Header) GetAllFieldsNamed(name string) []*field.Base {
	ixs := h.GetIndexesNamed(name)
	fs := make([]*field.Base, len(ixs))
	for i, ix := range ixs {
		fs[i] = h.fields[ix]
	}
	return fs
}

// getValue retrieves the cached value. The second value is true if the cache
// value was set.
func (h *Header) getValue(kind, name string) (any, bool) {
	v, found := h.valueCache[kind+":"+strings.ToLower(name)]
	return v, found
}

// setValue replaces the cached value for the given name.
func (h *Header) setValue(kind, name string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]any, len(h.fields))
	}
	h.valueCache[kind+":"+strings.ToLower(name)] = value
}

// Get retrieves the raw body of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple fields with the given name, it
// will return the first value found and ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", errtrace.Wrap(ErrNoSuchField)
	}

	b := h.fields[ixs[0]].Body()
	if len(ixs) > 1 {
		return b, errtrace.Wrap(ErrManyFields)
	}

	return b, nil
}

// GetAll fetches the raw bodies of all the fields with the given name.
//
// It returns nil with ErrNoSuchField if no field with the given name is set on
// the header.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, errtrace.Wrap(ErrNoSuchField)
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}
	return bs, nil
}

// GetParts parses the first field with the given name into parts using the
// grammar KindOf selects for the name. It returns ErrManyFields along with
// the parts of the first field when the field occurs more than once.
func (h *Header) GetParts(name string) ([]part.Part, error) {
	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	ps, perr := h.parser.Parse(KindOf(name), body)
	if perr != nil {
		return ps, perr
	}
	return ps, err
}

// GetAllParts parses every field with the given name into parts.
func (h *Header) GetAllParts(name string) ([][]part.Part, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, errtrace.Wrap(ErrNoSuchField)
	}

	all := make([][]part.Part, len(fs))
	for i, f := range fs {
		ps, err := h.parser.ParseField(f)
		if err != nil {
			return nil, err
		}
		all[i] = ps
	}
	return all, nil
}

// GetText returns the decoded text of the named unstructured field, such as
// Comments or any unknown field. Encoded words are decoded and comments are
// dropped.
func (h *Header) GetText(name string) (string, error) {
	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}

	s, perr := h.parser.Text(KindOf(name), body)
	if perr != nil {
		return s, perr
	}
	return s, err
}

// GetTime gets the given date header field as a time.Time. It will attempt to
// parse the date in many formats, not just the format specified by RFC 5322
// (though, it will try that first).
//
// It will return ErrNoDate if it is unable to parse the time value from the
// field and ErrNoSuchField if the header does not exist. If more than one
// field with the name is set on the header, the time from the first is
// returned with ErrManyFields.
func (h *Header) GetTime(name string) (time.Time, error) {
	if v, found := h.getValue("time", name); found {
		return v.(time.Time), nil
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return time.Time{}, err
	}

	t, perr := h.parser.Time(body)
	if perr != nil {
		return t, perr
	}

	if err == nil {
		h.setValue("time", name, t)
	}
	return t, err
}

// GetDate retrieves the Date header as a time.Time value.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// GetAddressList will return an addr.AddressList for the named field. This
// method works hard to avoid parse errors and tries to accept anything. As such
// a badly formatted address field might return a weird address value.
//
// It will return nil and ErrNoSuchField if the field is not set on the header.
// If the field is set more than once on the header, the list from the first
// is returned with ErrManyFields.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	if v, found := h.getValue("addr", name); found {
		return v.(addr.AddressList), nil
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	al, perr := h.parser.AddressList(body)
	if perr != nil {
		return al, perr
	}

	if err == nil {
		h.setValue("addr", name, al)
	}
	return al, err
}

// GetAllAddressLists will return a slice of addr.AddressList for all headers
// with the given name.
//
// If the named field does not exist in the header, this will return nil with
// ErrNoSuchField.
func (h *Header) GetAllAddressLists(name string) ([]addr.AddressList, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	all := make([]addr.AddressList, 0, len(bs))
	for _, b := range bs {
		al, err := h.parser.AddressList(b)
		if err != nil {
			return nil, err
		}
		all = append(all, al)
	}
	return all, nil
}

// GetMessageIDs returns the message IDs listed in every field with the given
// name, such as References or In-Reply-To, without angle brackets.
func (h *Header) GetMessageIDs(name string) ([]string, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, b := range bs {
		more, err := h.parser.MessageIDs(b)
		if err != nil {
			return nil, err
		}
		ids = append(ids, more...)
	}
	return ids, nil
}

// GetMessageID returns the Message-ID without angle brackets.
func (h *Header) GetMessageID() (string, error) {
	body, err := h.Get(MessageID)
	if err != nil {
		return "", err
	}

	ids, err := h.parser.MessageIDs(body)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// GetSubject returns the decoded value of the Subject header field.
//
// If Subject is not set in the header, it will return an empty string with
// ErrNoSuchField. If there are multiple Subject headers, it will return
// ErrManyFields.
func (h *Header) GetSubject() (string, error) {
	return h.GetText(Subject)
}

// GetKeywordsList will return a list of strings representing all the keywords
// set on the named header. There can be zero or more Keywords headers. Each
// header is a comma-separated list of Keywords. Encoded words are decoded,
// but comments and backslashes have no special meaning.
//
// This method will return nil with ErrNoSuchField if the named field does not
// exist.
func (h *Header) GetKeywordsList(name string) ([]string, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	allKs := make([]string, 0, len(bs)*2)
	for _, b := range bs {
		for _, k := range strings.Split(b, ",") {
			k, err := h.parser.Text(KindSubject, k)
			if err != nil {
				return nil, err
			}
			if k != "" {
				allKs = append(allKs, k)
			}
		}
	}
	return allKs, nil
}

// GetParamValue will return a param.Value for the header field matching the
// given name.
//
// This will ErrNoSuchField if no field with the given name is present. It will
// return ErrManyFields if more than one field with the given name is found.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	if v, found := h.getValue("param", name); found {
		// return a copy to prevent the cached value from being modified
		return v.(*param.Value).Clone(), nil
	}

	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	ps, err := h.parser.Parse(KindParameter, body)
	if err != nil {
		return nil, err
	}

	pv := param.FromParts(ps)
	h.setValue("param", name, pv)

	return pv.Clone(), nil
}

func (h *Header) getParamValueParam(name, p string) (string, error) {
	pv, err := h.GetParamValue(name)
	if err != nil {
		return "", err
	}

	v, ok := pv.Parameters()[p]
	if !ok {
		return "", errtrace.Wrap(ErrNoSuchFieldParameter)
	}
	return v, nil
}

// GetContentType returns the Content-type header as a param.Value.
func (h *Header) GetContentType() (*param.Value, error) {
	return h.GetParamValue(ContentType)
}

// GetMediaType returns the MIME type set in the Content-type header (other
// parameters are ignored).
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.MediaType(), nil
}

// GetCharset gets the charset from the Content-type header field. It returns
// ErrNoSuchFieldParameter if the field is present, but the parameter is not.
func (h *Header) GetCharset() (string, error) {
	return h.getParamValueParam(ContentType, param.Charset)
}

// GetBoundary gets the boundary from the Content-type header field. It returns
// ErrNoSuchFieldParameter if the field is present, but the parameter is not.
func (h *Header) GetBoundary() (string, error) {
	return h.getParamValueParam(ContentType, param.Boundary)
}

// GetContentDisposition returns the Content-disposition header as a
// param.Value.
func (h *Header) GetContentDisposition() (*param.Value, error) {
	return h.GetParamValue(ContentDisposition)
}

// GetPresentation returns the primary value of the Content-disposition
// header, usually "inline" or "attachment".
func (h *Header) GetPresentation() (string, error) {
	pv, err := h.GetContentDisposition()
	if err != nil {
		return "", err
	}
	return pv.Presentation(), nil
}

// GetFilename gets the filename parameter of the Content-disposition header.
// It returns ErrNoSuchFieldParameter if the field is present, but the
// parameter is not.
func (h *Header) GetFilename() (string, error) {
	return h.getParamValueParam(ContentDisposition, param.Filename)
}

// GetReceived parses every Received field, in the order they appear, which is
// the reverse of the order the message was relayed in.
func (h *Header) GetReceived() ([][]part.Part, error) {
	return h.GetAllParts(Received)
}
