package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/formatter"
	"github.com/yildizm/datagov/internal/logger"
)

// listOptions are shared by the list subcommands
type listOptions struct {
	filter string
	format string
}

func (o *listOptions) bind(cmd *cobra.Command, filterHelp string) {
	if filterHelp != "" {
		cmd.Flags().StringVarP(&o.filter, "filter", "f", "", filterHelp)
	}
	cmd.Flags().StringVarP(&o.format, "format", "o", "", "output format (terminal, json, csv, markdown)")
}

func newCdmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cdm",
		Aliases: []string{"objects"},
		Short:   "Browse the Canonical Data Model registry",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List CDM objects",
		Example: `  datagov cdm list
  datagov cdm list --filter operations --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, opts.format)
			if err != nil {
				return err
			}
			return writeFormatted(cmd, func() ([]byte, error) {
				return f.FormatObjects(catalog.FilterObjects(cat.Objects, opts.filter))
			})
		},
	}
	opts.bind(listCmd, "show objects whose name or domain contains this text")

	var showOpts listOptions
	showCmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one CDM object with its schema and lineage",
		Example: `  datagov cdm show cdm-001 --format markdown`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, showOpts.format)
			if err != nil {
				return err
			}
			obj, ok := cat.Object(args[0])
			if !ok {
				return fmt.Errorf("object not found: %s", args[0])
			}
			return writeFormatted(cmd, func() ([]byte, error) { return f.FormatObject(obj) })
		},
	}
	showOpts.bind(showCmd, "")

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func newDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Browse business data domains",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List domains",
		Example: `  datagov domains list
  datagov domains list --filter lisa --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, opts.format)
			if err != nil {
				return err
			}
			return writeFormatted(cmd, func() ([]byte, error) {
				return f.FormatDomains(catalog.FilterDomains(cat.Domains, opts.filter))
			})
		},
	}
	opts.bind(listCmd, "show domains whose name or steward contains this text")

	var showOpts listOptions
	showCmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one domain with its assets, issues and requests",
		Example: `  datagov domains show dom-01`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, showOpts.format)
			if err != nil {
				return err
			}
			d, ok := cat.Domain(args[0])
			if !ok {
				return fmt.Errorf("domain not found: %s", args[0])
			}
			return writeFormatted(cmd, func() ([]byte, error) { return f.FormatDomain(d) })
		},
	}
	showOpts.bind(showCmd, "")

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func newPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "policies",
		Aliases: []string{"policy"},
		Short:   "Browse governance policies",
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, opts.format)
			if err != nil {
				return err
			}
			return writeFormatted(cmd, func() ([]byte, error) { return f.FormatPolicies(cat.Policies) })
		},
	}
	opts.bind(listCmd, "")

	var showOpts listOptions
	showCmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one policy with its rules",
		Example: `  datagov policies show pol-001 --format json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, err := catalogAndFormatter(cmd, showOpts.format)
			if err != nil {
				return err
			}
			p, ok := cat.Policy(args[0])
			if !ok {
				return fmt.Errorf("policy not found: %s", args[0])
			}
			return writeFormatted(cmd, func() ([]byte, error) { return f.FormatPolicy(p) })
		},
	}
	showOpts.bind(showCmd, "")

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

// catalogAndFormatter loads the configured catalog and picks the output
// formatter, falling back to the configured default format
func catalogAndFormatter(cmd *cobra.Command, format string) (*catalog.Catalog, formatter.Formatter, error) {
	cfg := GetGlobalConfig()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	f, err := formatter.New(format, useColor(cmd))
	if err != nil {
		return nil, nil, err
	}
	cat, err := loadCatalog(cfg, logger.New("cli"))
	if err != nil {
		return nil, nil, err
	}
	return cat, f, nil
}

func writeFormatted(cmd *cobra.Command, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// useColor resolves output.color_mode against the command's stdout
func useColor(cmd *cobra.Command) bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
