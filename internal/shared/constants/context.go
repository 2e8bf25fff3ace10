package constants

// Gin context keys set by the auth middleware.
const (
	ContextKeyExternalUserID = "external_user_id"
	ContextKeyUserEmail      = "user_email"
	ContextKeyGivenName      = "given_name"
	ContextKeyFamilyName     = "family_name"
	ContextKeyIsAdmin        = "is_admin"
)

// Messages the UI branches on. These exact strings are part of the
// service/caller contract: the first triggers a login redirect, the second
// a profile-completion prompt.
const (
	MsgNotAuthenticated = "Not authenticated"
	MsgProfileNotFound  = "Beneficiary profile not found."
)

// MsgUserProfileNotFound is returned by messaging operations, where the
// caller may be either a beneficiary or a case worker.
const MsgUserProfileNotFound = "User profile not found"
