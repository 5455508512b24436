package domain

// User represents an administrative user of the catalog. Users are provisioned
// out-of-band; the application only ever reads them.
type User struct {
	Username     string
	PasswordHash string
}
