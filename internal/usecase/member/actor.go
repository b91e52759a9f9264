package member

// Actor identifies the admin performing a mutation, resolved from the
// validated session at the API boundary and passed down explicitly. The
// request metadata rides along for the audit trail.
type Actor struct {
	ID   uint
	Name string

	IPAddress string
	UserAgent string
}
