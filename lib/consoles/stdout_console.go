package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type writerConsole struct {
	mutex sync.Mutex
	out   io.Writer
}

func NewStdOutConsole() Console {
	return NewWriterConsole(os.Stdout)
}

func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{
		out: out,
	}
}

func NewNullConsole() Console {
	return NewWriterConsole(io.Discard)
}

// Printf writes a line prefixed with the current time. Safe for use by
// concurrent requests.
func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	builder.WriteString(fmt.Sprintf(format, a...))

	o.mutex.Lock()
	defer o.mutex.Unlock()

	_, _ = io.WriteString(o.out, builder.String())
}
