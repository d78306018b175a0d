// Package models holds the records exchanged with the video backend and the
// client-side forms that produce them.
package models

// User is the viewer or a channel owner as returned by the users endpoints.
type User struct {
	ID          string   `json:"_id"`
	UserName    string   `json:"userName"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName,omitempty"`
	ChannelName string   `json:"channelName,omitempty"`
	Avatar      []string `json:"avatar,omitempty"`
	CoverImage  []string `json:"coverImage,omitempty"`
}

// AvatarRef returns the primary avatar reference, or "" when none is set.
func (u *User) AvatarRef() string {
	if u == nil || len(u.Avatar) == 0 {
		return ""
	}
	return u.Avatar[0]
}

// DisplayName prefers the channel name, then the user name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.ChannelName != "" {
		return u.ChannelName
	}
	return u.UserName
}

// Channel is the public profile served by /users/channel/:id.
type Channel struct {
	User
	SubscribersCount     int  `json:"subscribersCount"`
	ChannelsSubscribedTo int  `json:"channelsSubscribedToCount"`
	IsSubscribed         bool `json:"isSubscribed"`
}

// Session is the payload of a successful login or registration. Login
// answers with accessToken, registration with token.
type Session struct {
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
	User        *User  `json:"user"`
}

// Credential returns whichever token field the backend filled.
func (s Session) Credential() string {
	if s.AccessToken != "" {
		return s.AccessToken
	}
	return s.Token
}

// ProfileUpdate is the JSON body of POST /users/update.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	UserName string `json:"userName,omitempty"`
}
