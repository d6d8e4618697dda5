package models

import "strings"

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// User is the simulated profile persisted between runs. There is no real
// authentication behind it.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Tier      Tier   `json:"tier"`
	AvatarURL string `json:"avatar_url"`
}

// DisplayNameFromEmail derives a profile name from the local part of an
// email address ("ada.lovelace@x.dev" -> "ada.lovelace").
func DisplayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
