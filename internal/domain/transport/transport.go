package transport

import "context"

// Metadata travels with a message so a provider can attach identifiers or
// routing hints without the dispatcher caring about the payload shape.
type Metadata struct {
	AlertID  string
	Priority string
	Pattern  string
	Subject  string // mail channel only; other transports ignore it
}

// Transport is the external capability that actually transmits a formatted
// message over one channel. This interface decouples the dispatch logic from
// any concrete provider library; implementations live in infra.
//
// Send is fallible and possibly slow. The dispatcher does not retry and
// imposes no timeout of its own: a hung call is the transport's
// responsibility to bound.
type Transport interface {
	Send(ctx context.Context, destination, body string, meta Metadata) error
}
