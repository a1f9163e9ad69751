package pkg

// ServerIDHTTPTCP is the identifier the built-in TCP server registers
// under.
const ServerIDHTTPTCP = "http tcp server"

// Registry maps server type identifiers to constructors. It is built
// explicitly by the process entry point and read-only thereafter during
// normal operation; it is not safe for concurrent mutation.
type Registry struct {
	factories map[string]func() Server
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() Server)}
}

// Register binds id to a server constructor. It reports false when id is
// already taken.
func (r *Registry) Register(id string, factory func() Server) bool {
	if _, ok := r.factories[id]; ok {
		return false
	}

	r.factories[id] = factory

	return true
}

// Get constructs a server instance for id, or returns nil when id is not
// registered.
func (r *Registry) Get(id string) Server {
	factory, ok := r.factories[id]
	if !ok {
		return nil
	}

	return factory()
}

func (r *Registry) IsRegistered(id string) bool {
	_, ok := r.factories[id]

	return ok
}

// Unregister removes id. It reports false when id was not registered.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.factories[id]; !ok {
		return false
	}

	delete(r.factories, id)

	return true
}

// Len returns the number of registered server types.
func (r *Registry) Len() int {
	return len(r.factories)
}

// RegisterBuiltin registers the server implementations shipped with this
// module. The UDP variant has no implementation yet and is deliberately
// absent.
func RegisterBuiltin(r *Registry) {
	r.Register(ServerIDHTTPTCP, func() Server { return NewTCPServer() })
}
