// cmd/plot-samtools-depth/main.go
package main

import (
	"depthbin/internal/appshell"
	"depthbin/internal/plotapp"
)

func main() { appshell.Main(plotapp.RunContext) }
