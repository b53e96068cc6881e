package playback

// Handle is the boundary to the native playback engine for one loaded media item.
// Play, Pause and Seek are fire-and-forget requests: their effect is observed through the next status tick.
type Handle interface {
	Play() error
	Pause() error
	// Seek requests an absolute position. Engines clamp it to [0, duration].
	Seek(positionMillis int64) error
	// OnStatus registers the push channel. The callback is invoked repeatedly for the life of the handle.
	OnStatus(callback func(Status))
	Close() error
}

// Engine begins loading media and returns a handle to control it.
type Engine interface {
	Attach(sourceURI string) (Handle, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(sourceURI string) (Handle, error)

func (f EngineFunc) Attach(sourceURI string) (Handle, error) {
	return f(sourceURI)
}
