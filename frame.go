package bower

import "errors"

// Frame errors. Rendering reports them to the run loop, which applies
// framePolicy.
var (
	// ErrSurfaceLost means the render target is gone (zero-sized or nil).
	ErrSurfaceLost = errors.New("bower: surface lost")
	// ErrSurfaceOutdated means the render target no longer matches the
	// configured surface size.
	ErrSurfaceOutdated = errors.New("bower: surface outdated")
	// ErrOutOfMemory means a resource could not be allocated. Unrecoverable.
	ErrOutOfMemory = errors.New("bower: out of memory")
	// ErrSurfaceTimeout means preparing the frame exceeded the frame budget.
	ErrSurfaceTimeout = errors.New("bower: surface timeout")
)

// frameAction is what the run loop does after a frame error.
type frameAction uint8

const (
	frameContinue    frameAction = iota // frame presented
	frameReconfigure                    // reconfigure the surface once, then continue
	frameTerminate                      // stop the run loop
	frameSkip                           // log and drop this frame
)

var frameActionNames = [...]string{"continue", "reconfigure", "terminate", "skip"}

func (a frameAction) String() string {
	if int(a) < len(frameActionNames) {
		return frameActionNames[a]
	}
	return "unknown"
}

// framePolicy classifies a frame error. Out of memory wins over every other
// condition; unknown errors are skipped like timeouts.
func framePolicy(err error) frameAction {
	switch {
	case err == nil:
		return frameContinue
	case errors.Is(err, ErrOutOfMemory):
		return frameTerminate
	case errors.Is(err, ErrSurfaceLost), errors.Is(err, ErrSurfaceOutdated):
		return frameReconfigure
	default:
		return frameSkip
	}
}
