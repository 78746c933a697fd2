package payload

// Sort order constants for list queries.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// SortByOptions is the allow-list for the sort_by query parameter. Invalid
// or absent values fall back to "priority".
var SortByOptions = []string{
	"original_date_added",
	"translation_date_added",
	"translation_date_modified",
	"original",
	"translation",
	"priority",
	"references",
	"length",
	"random",
}

// ImportResp reports the outcome counters of an originals bulk import.
type ImportResp struct {
	Added     int `json:"added"`
	Existing  int `json:"existing"`
	Fuzzied   int `json:"fuzzied"`
	Obsoleted int `json:"obsoleted"`
	Errored   int `json:"errored"`
}

// FormatResp describes one registered import format.
type FormatResp struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

// ProfileResp is the read-only aggregate served by the profile endpoints.
// Each list degrades to empty when its sub-lookup fails.
type ProfileResp struct {
	UserID         uint             `json:"user_id"`
	DisplayName    string           `json:"display_name"`
	RegisteredAt   string           `json:"registered_at"`
	RecentProjects []map[string]any `json:"recent_projects"`
	Locales        []string         `json:"locales"`
	Permissions    []map[string]any `json:"permissions"`
}

// LoginResp carries the token pair returned by a successful login.
type LoginResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
