// Command validate-icons checks that icon ids in the catalog have manifest
// entries and that every manifest asset file exists.
//
// Exit status is 0 when all assets exist, 2 when any are missing and 1 on
// any other failure. Catalog ids without a manifest entry are reported but
// never fail the run.
package main

import (
	"log"
	"os"

	"github.com/dtnitsch/icon-asset-check/internal/common"
	"github.com/dtnitsch/icon-asset-check/internal/validate"
	"github.com/dtnitsch/icon-asset-check/pkg/help"
)

func main() {
	app := common.NewApp("validate-icons",
		"verify icon catalog ids against the manifest and manifest assets against disk",
		help.ValidateQuickStart,
		validate.ValidateAction,
		validate.Flags()...)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
