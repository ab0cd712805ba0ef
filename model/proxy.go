package model

// Proxy is a named data component. OnRegister and OnRemove bracket its
// active lifetime in the Model.
type Proxy interface {
	// Name returns the unique registration name.
	Name() string
	// OnRegister is called after the proxy is registered.
	OnRegister()
	// OnRemove is called after the proxy is removed.
	OnRemove()
}

// DataProxy is a minimal Proxy carrying an arbitrary payload, for hosts
// that need storage without behavior. Embed it to inherit the no-op hooks.
type DataProxy struct {
	name string

	// Data is the proxy's payload. Access discipline is the host's concern.
	Data any
}

// NewDataProxy creates a DataProxy with the given name and payload.
func NewDataProxy(name string, data any) *DataProxy {
	return &DataProxy{name: name, Data: data}
}

func (p *DataProxy) Name() string { return p.name }

func (p *DataProxy) OnRegister() {}

func (p *DataProxy) OnRemove() {}

var _ Proxy = (*DataProxy)(nil)
