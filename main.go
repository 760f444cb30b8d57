package main

import (
	"github.com/joho/godotenv"

	"github.com/spindlewrit/spindlewrit/cmd"
)

func main() {
	// .env is optional; environment reads happen at this boundary only.
	_ = godotenv.Load()
	cmd.Execute()
}
