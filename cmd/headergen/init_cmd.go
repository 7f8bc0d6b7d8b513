package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .headergen.yaml config file",
	Long:  `Create a .headergen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# headergen configuration

# Shared settings
verbose: false
color: false

# Generation settings
generate:
  input-dir: ""              # directory with metadata.cfg and *.svg
  output-dir: ../resources/atlantafx/decorations/theme
  scale-width: 0             # 0 = ButtonWidth from metadata.cfg
  scale-height: 0            # 0 = ButtonHeight from metadata.cfg
  rasterizer: exec           # exec | native
  tool: svgexport
  property-prefix: "-fx-"    # "none" for plain CSS
  ignore: []
  format: text               # text | json

# Inspection settings
inspect:
  format: text               # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
