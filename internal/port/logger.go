package port

// Logger is the diagnostics sink used by the loaders. The surrounding
// application decides its destination and format.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}
