package previewhub

import "tafseel/backend/internal/models"

// Client is the interface for one connected preview viewer. It abstracts the
// underlying transport so the hub can manage connection types uniformly.
type Client interface {
	// GetViewerID returns the unique identifier for this connection.
	GetViewerID() string
	// GetSlug returns the slug of the specification the viewer is watching.
	GetSlug() string

	// GetSendChannel returns the channel the hub pushes update events into.
	// It is a send-only channel.
	GetSendChannel() chan<- models.SpecUpdate

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the client's connection and channels.
	Close()
}
