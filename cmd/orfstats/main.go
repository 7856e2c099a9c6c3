// cmd/orfstats/main.go
package main

import (
	"orfscan/internal/appshell"
	"orfscan/internal/statsapp"
)

func main() {
	appshell.Main(statsapp.RunContext)
}
