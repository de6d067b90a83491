package main

import (
	"os"

	"table-booking/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           table-booking
// @version         1.0
// @description     Public restaurant table booking API.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey ManageToken
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
