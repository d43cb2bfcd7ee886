package main

import (
	"context"
	"fmt"
	"os"

	_ "volunteermatch/docs"
	"volunteermatch/internal/cli"
)

// @title Volunteer Match API
// @version 1.0
// @description Skill-based volunteer matching and event invitation lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
