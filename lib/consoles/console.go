package consoles

type Console interface {
	Printf(format string, a ...any)
}
