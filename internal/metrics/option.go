package metrics

// ConnState mirrors wsconn.State as the integer gauge value recorded under
// orderbook_venue_connection_state.
type ConnState int

const (
	ConnDisconnected ConnState = 0
	ConnConnecting   ConnState = 1
	ConnConnected    ConnState = 2
	ConnClosed       ConnState = 3
)
