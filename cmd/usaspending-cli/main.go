package main

import (
	"usaspending-client/cmd/usaspending-cli/commands"
	"usaspending-client/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
