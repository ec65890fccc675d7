package part

// Received is one clause of a Received trace field, such as "with ESMTP" or
// "id abc123". The name is the lowercased keyword.
type Received struct {
	base
	name  string
	value string
}

// NewReceived returns a received clause part.
func NewReceived(name, value string) *Received {
	return &Received{name: name, value: value}
}

func (*Received) Kind() Kind      { return KindReceived }
func (r *Received) Value() string { return r.value }

// Name returns the clause keyword.
func (r *Received) Name() string { return r.name }

// ReceivedDomain is a "from" or "by" clause of a Received field. Besides the
// value, it breaks out the name given in EHLO/HELO and the hostname and IP
// address from a trailing "(hostname [address])" comment.
type ReceivedDomain struct {
	Received
	ehloName string
	hostname string
	address  string
}

// NewReceivedDomain returns a from/by clause part.
func NewReceivedDomain(name, value, ehloName, hostname, address string) *ReceivedDomain {
	return &ReceivedDomain{
		Received: Received{name: name, value: value},
		ehloName: ehloName,
		hostname: hostname,
		address:  address,
	}
}

func (*ReceivedDomain) Kind() Kind { return KindReceivedDomain }

// EhloName returns the name the remote host announced itself with.
func (r *ReceivedDomain) EhloName() string { return r.ehloName }

// Hostname returns the reverse-resolved hostname, if recorded.
func (r *ReceivedDomain) Hostname() string { return r.hostname }

// Address returns the IP address, if recorded.
func (r *ReceivedDomain) Address() string { return r.address }
