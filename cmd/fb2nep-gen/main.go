// cmd/fb2nep-gen/main.go
package main

import (
	"fb2nep/internal/app"
	"fb2nep/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
