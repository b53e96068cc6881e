package constant

import _ "embed"

// AsciiArtLogo is printed above the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
