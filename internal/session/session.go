package session

import (
	"errors"
	"fmt"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

// ErrGatedFeature means an action needs an entitlement the current user does
// not hold. Checked synchronously, before any external service is contacted.
var ErrGatedFeature = errors.New("feature requires a Pro account")

// Session is the explicit per-invocation context every entitlement check
// receives. u is nil when no one is logged in.
type Session struct {
	User *models.User
}

// CanUploadArchive is a pure predicate: archive upload is a Pro capability.
func (s Session) CanUploadArchive() bool {
	return s.User != nil && s.User.Tier == models.TierPro
}

// RequireUpload short-circuits the upload path for non-entitled sessions.
func (s Session) RequireUpload() error {
	if !s.CanUploadArchive() {
		if s.User == nil {
			return fmt.Errorf("%w: log in and upgrade first", ErrGatedFeature)
		}
		return fmt.Errorf("%w: current tier is %s", ErrGatedFeature, s.User.Tier)
	}
	return nil
}

// NewUser builds a simulated profile for an email login.
func NewUser(id, email string) *models.User {
	return &models.User{
		ID:        id,
		Email:     email,
		Name:      models.DisplayNameFromEmail(email),
		Tier:      models.TierFree,
		AvatarURL: "https://api.dicebear.com/7.x/identicon/svg?seed=" + id,
	}
}
