package entities

import "time"

// VerificationGuest is the verification status of a player without an account.
const VerificationGuest = "GUEST"

// User describes the player of a conversation as reported by the channel.
type User struct {
	ID                 string    // channel-specific player identifier
	Locale             string    // BCP 47 locale requested by the player
	VerificationStatus string    // GUEST or VERIFIED
	LastSeen           time.Time // zero when the player has never been seen
}

// IsNew reports whether the player should be treated as a first-time player.
func (u User) IsNew() bool {
	return u.VerificationStatus == VerificationGuest || u.LastSeen.IsZero()
}
