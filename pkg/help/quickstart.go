package help

// ValidateQuickStart is shown by validate-icons --help.
const ValidateQuickStart = `Reads the icon catalog and the icons manifest from fixed locations under
the project root, then:

  - lists catalog ids that have no manifest entry (informational only)
  - lists manifest entries whose assetPath does not exist (fails the run)

exit_codes:
  0: every manifest asset exists
  1: catalog or manifest could not be read or parsed
  2: one or more manifest assets are missing

examples:
  validate-icons
  validate-icons --root ~/src/app --format json
  validate-icons --verbose        # also list present assets and extractor counts
  validate-icons --lenient        # skip manifest entries without id/assetPath
`

// LayoutQuickStart is shown by dump-icon-layout --help.
const LayoutQuickStart = `Prints every icon definition in the catalog as "id | label | route",
grouped under its page in ascending page order. Definitions that appear
before the first page marker, or whose block has no id, are left out.

examples:
  dump-icon-layout
  dump-icon-layout --format yaml
  dump-icon-layout --verbose      # log how many blocks were dropped
`
