package provider

// Account is the profile of the user an access token belongs to.
type Account struct {
	ID    int64
	Login string
	Name  string
	Email string
}

// Repository is a repository the linked user may enable webhooks on.
type Repository struct {
	ID       int64
	FullName string
}
