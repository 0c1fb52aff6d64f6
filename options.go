package hopf

// StateOption configures a VisualizationState during creation.
//
// Example:
//
//	// Default: 256-segment preview, preview shown
//	s := hopf.NewVisualizationState()
//
//	// Touch devices hide the live preview
//	s := hopf.NewVisualizationState(hopf.WithMobile(true))
type StateOption func(*stateOptions)

// stateOptions holds optional configuration for VisualizationState creation.
type stateOptions struct {
	divisions int
	mobile    bool
}

// defaultStateOptions returns the default state options.
func defaultStateOptions() stateOptions {
	return stateOptions{
		divisions: DefaultDivisions,
		mobile:    false,
	}
}

// WithDivisions sets the number of segments of the preview polyline.
// Values below 1 keep DefaultDivisions.
func WithDivisions(n int) StateOption {
	return func(o *stateOptions) {
		if n >= 1 {
			o.divisions = n
		}
	}
}

// WithMobile marks the state as driven by a touch device. The preview curve
// is never visible on mobile, since there is no hover before a tap.
func WithMobile(mobile bool) StateOption {
	return func(o *stateOptions) {
		o.mobile = mobile
	}
}
