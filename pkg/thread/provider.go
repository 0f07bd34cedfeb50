package thread

// ID is the provider's opaque identifier for a started thread.
type ID uint64

// Entry is the only function shape a Provider knows how to start.
type Entry func(arg any) any

// Provider is the native thread collaborator: it starts, joins and yields OS
// threads without knowing anything about the work they carry.
type Provider interface {
	// Create starts entry(arg) on a new OS thread.
	Create(entry Entry, arg any) (ID, error)
	// Join blocks until the thread finishes and returns what entry returned.
	// Each ID can be joined once.
	Join(id ID) (any, error)
	// Yield gives up the rest of the calling thread's time slice.
	Yield() error
}

// osThreadIdentifier is implemented by providers that can report the kernel
// id of a thread they started.
type osThreadIdentifier interface {
	OSThreadID(id ID) (int, bool)
}
