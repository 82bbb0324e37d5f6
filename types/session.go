package types

// SessionContext carries the identity of the request's operator. It is
// built once per request by the auth middleware from the token claims and
// passed by parameter; nothing below the controllers reads ambient state.
type SessionContext struct {
	UserID    int
	Username  string
	Unit      string
	WhsCode   string
	SessionID string
}
