package layout

import (
	"strings"
	"testing"

	"github.com/dtnitsch/icon-asset-check/internal/common"
	"github.com/dtnitsch/icon-asset-check/internal/testutil"
	"github.com/dtnitsch/icon-asset-check/models"
)

func TestDumpAction(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		models.DefaultCatalogPath: `MainFeaturePage(index: 1, icons: [
  MainFeatureIcon(
    id: 'later',
  ),
]),
MainFeaturePage(index: 0, icons: [
  MainFeatureIcon(
    id: 'alpha',
    label: 'Home\nScreen',
    routeName: AppRoutes.HomeRoute,
  ),
  MainFeatureIcon(
    label: 'no id',
  ),
]),
`,
	})

	app := common.NewApp("dump-icon-layout", "test", "", DumpAction)
	stdout, stderr, code := testutil.RunApp(t, app, "--root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr:\n%s", code, stderr)
	}

	want := `Icon layout by page

=== Page 0 ===
- alpha | Home/Screen | HomeRoute

=== Page 1 ===
- later |  | 
`
	if stdout != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout, want)
	}
}

func TestDumpAction_VerboseLogsDiagnostics(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		models.DefaultCatalogPath: "MainFeaturePage(index: 0,\nMainFeatureIcon(\n  label: 'x',\n),\n",
	})

	app := common.NewApp("dump-icon-layout", "test", "", DumpAction)
	_, stderr, code := testutil.RunApp(t, app, "--root", root, "--verbose")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, `"malformed":1`) {
		t.Errorf("stderr missing malformed count:\n%s", stderr)
	}
}

func TestDumpAction_MissingCatalog(t *testing.T) {
	root := t.TempDir()
	app := common.NewApp("dump-icon-layout", "test", "", DumpAction)
	_, _, code := testutil.RunApp(t, app, "--root", root)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
