package main

import (
	"context"

	"f1data-backend/cmd/f1data-cli/commands"
	"f1data-backend/lib/serviceutil"
	"f1data-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "f1data-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(serviceutil.SignalContext())
}
