// cmd/orfscan/main.go
package main

import (
	"orfscan/internal/app"
	"orfscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
