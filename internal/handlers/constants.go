package handlers

import "time"

const (
	// PlayerSessionCookie carries the signed player session token.
	PlayerSessionCookie = "player_session"
	// GuardianSessionCookie carries the signed guardian session token.
	GuardianSessionCookie = "guardian_session"

	// oauthStateCookie and oauthSIDCookie hold the in-flight OAuth
	// handshake; both are short-lived and cleared on callback.
	oauthStateCookie = "oauth_state"
	oauthSIDCookie   = "oauth_sid"
	oauthCookieTTL   = 10 * time.Minute

	// maxRequestBody bounds JSON request bodies. The largest legitimate
	// payload is a signup form; a megabyte is generous.
	maxRequestBody = 1 << 20
)
