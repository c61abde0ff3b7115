package identity

// Provider supplies the current user for version ownership scoping.
type Provider interface {
	// CurrentUser returns the user id and whether a user is present.
	CurrentUser() (string, bool)
}

// Static is a fixed-user provider for single-user deployments.
type Static string

// CurrentUser implements Provider.
func (s Static) CurrentUser() (string, bool) {
	return string(s), s != ""
}
