package bind

// maxRenderAttempts bounds how often Render restarts a frame because the
// store moved while it was being drawn.
const maxRenderAttempts = 3

// Render draws one frame from a single pinned state. After view returns it
// checks that the store still holds the pinned state; if not, the frame is
// discarded and drawn again from the newer state, up to maxRenderAttempts
// times. Slices read inside view should use Slice.At with the pinned state so
// every part of the frame agrees on one version.
func Render[S any](src Source[S], view func(s *S) string) string {
	pinned := src.GetState()
	out := view(pinned)
	for attempt := 1; attempt < maxRenderAttempts; attempt++ {
		cur := src.GetState()
		if cur == pinned {
			break
		}
		pinned = cur
		out = view(pinned)
	}
	return out
}
