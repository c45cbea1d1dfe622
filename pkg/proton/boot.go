package proton

// Prefix lifecycle operations. Each one drives the wrapped wine's boot
// helper against the inner prefix and then synchronizes the bundle's
// prefix metadata into the outer prefix, so the outer directory always
// reflects the build that last touched it.

// InitPrefix initializes the prefix pair. The optional outer argument
// overrides the configured outer prefix for this call.
func (p Proton) InitPrefix(outer string) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.InitPrefix("")
	})
}

// UpdatePrefix creates or updates the prefix pair.
func (p Proton) UpdatePrefix(outer string) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.UpdatePrefix("")
	})
}

// StopProcesses ends processes running in the prefix.
func (p Proton) StopProcesses(outer string, force bool) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.StopProcesses("", force)
	})
}

// Restart imitates a windows restart inside the prefix.
func (p Proton) Restart(outer string) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.Restart("")
	})
}

// Shutdown imitates a windows shutdown inside the prefix.
func (p Proton) Shutdown(outer string) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.Shutdown("")
	})
}

// EndSession ends the wineboot session.
func (p Proton) EndSession(outer string) ([]byte, error) {
	return p.lifecycle(outer, func(q Proton) ([]byte, error) {
		return q.wine.EndSession("")
	})
}

func (p Proton) lifecycle(outer string, op func(Proton) ([]byte, error)) ([]byte, error) {
	q, err := p.resolved(outer)
	if err != nil {
		return nil, err
	}

	out, err := op(q)
	if err != nil {
		return out, err
	}

	return out, q.syncMetadata()
}
