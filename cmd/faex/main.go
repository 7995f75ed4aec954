// cmd/faex/main.go
package main

import (
	"faex/internal/app"
	"faex/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
