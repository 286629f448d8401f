// Entrypoint for the CLI; delegates to the Cobra root command in cmd/root.go.

package main

import (
	"github.com/mousebaiker/smolosc/cmd"
)

func main() {
	cmd.Execute()
}
