package netsync

// Direction identifies which side produced the snapshots flowing through a
// channel. The two directions of an entity are fully independent: each keeps
// its own buffer and clock state.
type Direction byte

const (
	// FromServer is the channel carrying server-authoritative snapshots
	// received by a client.
	FromServer Direction = iota
	// FromClient is the channel carrying client-authoritative snapshots
	// received by the server.
	FromClient
)

// directionCount is the number of independent sync directions per entity.
const directionCount = 2

// String ...
func (d Direction) String() string {
	switch d {
	case FromServer:
		return "server"
	case FromClient:
		return "client"
	}
	return "unknown"
}
