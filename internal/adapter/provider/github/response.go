package github

import "github.com/heartmarshall/ghconnect/internal/provider"

// apiUser is the subset of GET /user used here.
type apiUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// apiRepository is the subset of a GET /user/repos item used here.
type apiRepository struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Permissions struct {
		Admin bool `json:"admin"`
	} `json:"permissions"`
}

func (u apiUser) toAccount() *provider.Account {
	return &provider.Account{ID: u.ID, Login: u.Login, Name: u.Name, Email: u.Email}
}

// adminRepositories keeps the repositories the user can manage webhooks on.
func adminRepositories(batch []apiRepository) []provider.Repository {
	repos := make([]provider.Repository, 0, len(batch))
	for _, r := range batch {
		if !r.Permissions.Admin {
			continue
		}
		repos = append(repos, provider.Repository{ID: r.ID, FullName: r.FullName})
	}
	return repos
}
