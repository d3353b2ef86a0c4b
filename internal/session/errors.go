package session

import "errors"

// ErrNoSession is returned by [Manager.Resolve] whenever a request cannot be
// bound to a live session: missing token, bad signature, expired token, or a
// session destroyed by logout / account deletion. Callers treat the request
// as anonymous in every case.
var ErrNoSession = errors.New("no valid session")
