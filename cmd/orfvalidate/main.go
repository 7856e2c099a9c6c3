// cmd/orfvalidate/main.go
package main

import (
	"orfscan/internal/appshell"
	"orfscan/internal/validateapp"
)

func main() {
	appshell.Main(validateapp.RunContext)
}
