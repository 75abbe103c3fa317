package flappy

// ObstacleVisuals is the part of the render surface driven by the obstacle field.
type ObstacleVisuals interface {
	// CreateObstacleVisual adds a pipe pair. topHeight spans from the arena
	// top to the gate, bottomHeight from the gate to the arena bottom.
	CreateObstacleVisual(id int, x, topHeight, bottomHeight, width float64)
	UpdateObstacleVisual(id int, x float64)
	DestroyObstacleVisual(id int)
}

// RenderSurface is the presentation collaborator of the simulation.
// All calls are visual cues; none of them feed back into game state.
type RenderSurface interface {
	ObstacleVisuals

	// SetActorTransform places the actor at a vertical position with a
	// rotation in degrees (positive = nose down).
	SetActorTransform(y, rotation float64)

	ShowStartScreen()
	HideScreens()
	ShowGameOver(score, level int, label string)

	UpdateHUD(score, level int, label string)
	FlashLevelUp(level int)
}

// InputSource delivers primary-action events (pointer press or flap key).
type InputSource interface {
	// OnActivate registers fn and returns a function that unregisters it.
	OnActivate(fn func()) (unregister func())
}

// NopSurface discards every render call. Used by headless runs.
type NopSurface struct{}

var _ RenderSurface = NopSurface{}

func (NopSurface) CreateObstacleVisual(int, float64, float64, float64, float64) {}
func (NopSurface) UpdateObstacleVisual(int, float64)                            {}
func (NopSurface) DestroyObstacleVisual(int)                                    {}
func (NopSurface) SetActorTransform(float64, float64)                           {}
func (NopSurface) ShowStartScreen()                                             {}
func (NopSurface) HideScreens()                                                 {}
func (NopSurface) ShowGameOver(int, int, string)                                {}
func (NopSurface) UpdateHUD(int, int, string)                                   {}
func (NopSurface) FlashLevelUp(int)                                             {}

// InputHub is an InputSource fed by a host: the host calls Activate when its
// flap key, click or touch arrives.
type InputHub struct {
	handlers map[int]func()
	nextID   int
}

var _ InputSource = (*InputHub)(nil)

// NewInputHub creates an empty hub.
func NewInputHub() *InputHub {
	return &InputHub{handlers: make(map[int]func())}
}

// OnActivate implements InputSource.
func (h *InputHub) OnActivate(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.handlers[id] = fn
	return func() {
		delete(h.handlers, id)
	}
}

// Activate invokes every registered handler in registration order.
func (h *InputHub) Activate() {
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.handlers[id]; ok {
			fn()
		}
	}
}

// Handlers returns the number of registered handlers.
func (h *InputHub) Handlers() int {
	return len(h.handlers)
}
