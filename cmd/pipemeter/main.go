package main

import "code.cloudfoundry.org/throughput/cmd/pipemeter/app"

func main() {
	cfg := app.LoadConfig()
	pm := app.New(cfg)

	pm.Run()
}
