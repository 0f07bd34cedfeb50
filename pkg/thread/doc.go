// Package thread runs a unit of work on its own dedicated OS thread and hands
// back a typed, owned handle to it.
//
// Highlights:
// - Spawn/MustSpawn: start func() A on a new OS thread, get a *Thread[A]
// - Join/Wait: block until the thread finishes and take its result
// - Close: join and discard the result, for use with defer
// - Scope/Go: join every thread spawned through a scope on Scope.Close
// - Deschedule: yield the calling thread's time slice
//
// Every spawned thread is joined exactly once, either explicitly (Join, Wait)
// or by cleanup (Close, Scope.Close, or the garbage-collector safety net).
// There is no pooling: one Spawn is one OS thread.
package thread
