package auth

// OAuthIdentity represents user information obtained from an OAuth provider
// after exchanging an authorization code. Name and PreferredUsername come from
// provider metadata and may be absent.
type OAuthIdentity struct {
	ProviderID        string
	Email             string
	Name              *string
	PreferredUsername *string
}

// DisplayName resolves the display name the way the registration flow labels
// new principals: provider name, then username, then a provider-neutral
// fallback.
func (i OAuthIdentity) DisplayName() string {
	if i.Name != nil && *i.Name != "" {
		return *i.Name
	}
	if i.PreferredUsername != nil && *i.PreferredUsername != "" {
		return *i.PreferredUsername
	}
	return "GitHub User"
}
