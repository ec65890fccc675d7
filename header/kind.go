package header

import "strings"

// These are the header field names this package knows how to parse.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	Comments                = "Comments"
	ContentDisposition      = "Content-disposition"
	ContentID               = "Content-id"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-reply-to"
	Keywords                = "Keywords"
	MessageID               = "Message-id"
	Received                = "Received"
	References              = "References"
	ReplyTo                 = "Reply-to"
	ResentBcc               = "Resent-bcc"
	ResentCc                = "Resent-cc"
	ResentDate              = "Resent-date"
	ResentFrom              = "Resent-from"
	ResentMessageID         = "Resent-message-id"
	ResentSender            = "Resent-sender"
	ResentTo                = "Resent-to"
	ReturnPath              = "Return-path"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// Kind selects the grammar used to parse a field body.
type Kind int

// The kinds of field body.
const (
	KindGeneric   Kind = iota // unstructured text
	KindSubject               // unstructured text, whitespace kept
	KindAddress               // address list
	KindDate                  // date-time
	KindID                    // one or more msg-ids
	KindParameter             // value with parameters
	KindReceived              // trace field
)

var kindNames = [...]string{
	KindGeneric:   "generic",
	KindSubject:   "subject",
	KindAddress:   "address",
	KindDate:      "date",
	KindID:        "id",
	KindParameter: "parameter",
	KindReceived:  "received",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name as returned by String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return KindGeneric, false
}

var fieldKinds = map[string]Kind{
	strings.ToLower(Bcc):                KindAddress,
	strings.ToLower(Cc):                 KindAddress,
	strings.ToLower(From):               KindAddress,
	strings.ToLower(ReplyTo):            KindAddress,
	strings.ToLower(ResentBcc):          KindAddress,
	strings.ToLower(ResentCc):           KindAddress,
	strings.ToLower(ResentFrom):         KindAddress,
	strings.ToLower(ResentSender):       KindAddress,
	strings.ToLower(ResentTo):           KindAddress,
	strings.ToLower(ReturnPath):         KindAddress,
	strings.ToLower(Sender):             KindAddress,
	strings.ToLower(To):                 KindAddress,
	strings.ToLower(Date):               KindDate,
	strings.ToLower(ResentDate):         KindDate,
	strings.ToLower(ContentID):          KindID,
	strings.ToLower(InReplyTo):          KindID,
	strings.ToLower(MessageID):          KindID,
	strings.ToLower(References):         KindID,
	strings.ToLower(ResentMessageID):    KindID,
	strings.ToLower(ContentDisposition): KindParameter,
	strings.ToLower(ContentType):        KindParameter,
	strings.ToLower(Received):           KindReceived,
	strings.ToLower(Subject):            KindSubject,
}

// KindOf returns the kind of body the named field carries. Names are matched
// without regard to case. Unknown fields are KindGeneric.
func KindOf(name string) Kind {
	if k, ok := fieldKinds[strings.ToLower(name)]; ok {
		return k
	}
	return KindGeneric
}
