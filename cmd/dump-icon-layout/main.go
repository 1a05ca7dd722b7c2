// Command dump-icon-layout prints the icon catalog grouped by page.
package main

import (
	"log"
	"os"

	"github.com/dtnitsch/icon-asset-check/internal/common"
	"github.com/dtnitsch/icon-asset-check/internal/layout"
	"github.com/dtnitsch/icon-asset-check/pkg/help"
)

func main() {
	app := common.NewApp("dump-icon-layout",
		"print catalog icon definitions grouped by page",
		help.LayoutQuickStart,
		layout.DumpAction)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
