package thread

// Deschedule yields the rest of the calling OS thread's time slice through
// the default provider. It only affects scheduling order.
func Deschedule() {
	DescheduleOn(DefaultProvider())
}

// DescheduleOn yields through p. A failing yield is an environment fault and
// panics with ErrYieldFailed.
func DescheduleOn(p Provider) {
	if err := p.Yield(); err != nil {
		fatal(ErrYieldFailed, err)
	}
}
