package constant

const (
	RoleAdmin = "admin"

	// ResetTokenBytes is the entropy of a reset token value before hex encoding.
	ResetTokenBytes = 32

	DefaultResetTokenExpiryMin = 60
	DefaultBcryptCost          = 10

	// IdentityHeader carries the session gateway's resolved user email.
	IdentityHeader = "X-User-Email"
)
