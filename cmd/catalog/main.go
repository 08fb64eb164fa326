// Command catalog serves the product catalog API and its maintenance tasks.
//
// @title                       Product Catalog API
// @version                     1.0
// @description                 Catalog of categories and products with users, reports and email export.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer JWT obtained from /user/login
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
