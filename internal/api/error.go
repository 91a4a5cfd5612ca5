package api

// Error is an application-level failure reported by the backend: the request
// completed with a non-success status. The status code is preserved so
// callers can special-case authorization failures; the client itself takes
// no corrective action on 401.
//
// Transport-level failures (no response at all) are returned as plain
// wrapped errors, never as *Error.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}
