// Command storefrontctl is an offline helper for editors: it checks menu documents before upload and
// previews the metadata the storefront will emit for a page.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/seo"
)

var errMenuInvalid = errors.New("menu failed validation")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "storefrontctl",
		Short:        "Storefront navigation and SEO tooling",
		SilenceUsage: true,
	}
	root.AddCommand(newValidateMenuCmd(), newFlattenCmd(), newSEOPreviewCmd())
	return root
}

func newValidateMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-menu <file>",
		Short: "Validate a menu document and print the report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := readMenu(args[0])
			if err != nil {
				return err
			}
			report := nav.Validate(menu)
			if err := writeIndentedJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.IsValid {
				return fmt.Errorf("%s: %w", args[0], errMenuInvalid)
			}
			return nil
		},
	}
}

func newFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <file>",
		Short: "Print the menu tree as an indented outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := readMenu(args[0])
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), menu)
		},
	}
}

func newSEOPreviewCmd() *cobra.Command {
	var (
		name        string
		path        string
		description string
		settings    string
	)
	cmd := &cobra.Command{
		Use:   "seo-preview",
		Short: "Print the metadata generated for a static page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("--name is required")
			}
			defaults := seo.DefaultSettings()
			if settings != "" {
				f, err := os.Open(settings)
				if err != nil {
					return err
				}
				defer f.Close()
				if defaults, err = seo.LoadSettings(f, defaults); err != nil {
					return err
				}
			}
			gen := seo.NewGenerator(defaults)
			entity := seo.FromPage(domain.Page{
				Slug:           path,
				Title:          name,
				SEODescription: description,
				IsPublished:    true,
			})
			meta := gen.GenerateSEOData(entity)
			return writeIndentedJSON(cmd.OutOrStdout(), map[string]any{
				"meta":    meta,
				"preview": gen.Preview(entity),
				"quality": seo.AuditQuality(meta, gen.GenerateAllStructuredData(entity)),
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "page title")
	cmd.Flags().StringVar(&path, "path", "/", "public path of the page")
	cmd.Flags().StringVar(&description, "description", "", "meta description")
	cmd.Flags().StringVar(&settings, "settings", "", "YAML file overriding the default SEO settings")
	return cmd
}

func readMenu(path string) (domain.NavigationMenu, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.NavigationMenu{}, err
	}
	defer f.Close()
	return nav.DecodeMenu(f)
}

func writeOutline(w io.Writer, menu domain.NavigationMenu) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", menu.Name, menu.Type); err != nil {
		return err
	}
	for _, flat := range nav.Flatten(menu.Items) {
		marker := ""
		if !flat.Item.IsVisible {
			marker = " [hidden]"
		}
		line := fmt.Sprintf("%s- %s -> %s%s\n", strings.Repeat("  ", flat.Depth+1), flat.Item.Label, nav.Href(flat.Item), marker)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
