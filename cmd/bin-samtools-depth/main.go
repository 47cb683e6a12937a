// cmd/bin-samtools-depth/main.go
package main

import (
	"depthbin/internal/app"
	"depthbin/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
