// cmd/faex-index/main.go
package main

import (
	"faex/internal/appshell"
	"faex/internal/indexapp"
)

func main() {
	appshell.Main(indexapp.RunContext)
}
