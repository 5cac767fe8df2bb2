// Copyright Inventory Capture Inc., 2026. All rights reserved.

package types

// Session identifies the signed-in user. A zero Session means unauthenticated.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Authenticated reports whether a bearer token is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// SignInRequest is the wire body for POST /user/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse carries the identity and bearer token issued on sign-in.
type SignInResponse struct {
	User  string `json:"user"`
	Token string `json:"token"`
}

// RegisterRequest is the wire body for POST /user/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SubscriptionsResponse lists the part numbers the current identity follows.
type SubscriptionsResponse struct {
	SubscribedParts []string `json:"subscribedParts"`
}
