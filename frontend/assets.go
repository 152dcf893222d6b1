package frontend

import _ "embed"

//go:embed favicon.svg
var Favicon []byte
