package cause

import "go.uber.org/zap"

// logger traces AC1/AC2/AC3 and SC1-4 pass/fail decisions. It defaults to
// a no-op logger: this is internal diagnostics for a caller debugging a
// specific judgment, not an outward observability surface.
var logger = zap.NewNop()

// SetLogger installs l as the package's diagnostic logger. Passing nil
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
