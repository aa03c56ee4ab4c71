package blogpub

import "go.uber.org/zap"

const (
	// maxImageWidth is the widest inline image Blogger renders well;
	// wider images are downscaled proportionally before encoding.
	maxImageWidth = 1600

	// jpegQuality balances size against visible artifacts for inlined photos.
	jpegQuality = 85

	// maxInlineBytes is the encoded payload size above which the Blogger API
	// has been seen to reject posts. Exceeding it logs a warning only.
	maxInlineBytes = 200 * 1024
)

// Option configures additional Publisher behavior.
type Option func(*Publisher)

// WithLogger sets the logger used for progress and warning output.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Publisher) {
		p.log = log
	}
}
