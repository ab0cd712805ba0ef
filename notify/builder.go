package notify

// Builder assembles a Notification fluently. Useful when the optional
// fields are set conditionally at the call site.
type Builder struct {
	note *Notification
}

// Build starts a Builder for a notification with the given name.
func Build(name string) *Builder {
	return &Builder{note: New(name, nil, "")}
}

// WithBody sets the notification payload.
func (b *Builder) WithBody(body any) *Builder {
	b.note.Body = body
	return b
}

// WithType sets the notification type discriminator.
func (b *Builder) WithType(noteType string) *Builder {
	b.note.Type = noteType
	return b
}

// Note returns the assembled Notification.
func (b *Builder) Note() *Notification {
	return b.note
}
