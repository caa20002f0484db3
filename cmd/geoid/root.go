package main

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/geoid"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "geoid",
		Short:        "Resolve French administrative selections to numeric identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := geoid.Validate(); err != nil {
				return fmt.Errorf("geographic tables are inconsistent: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(
		newResolveCmd(),
		newNameCmd(),
		newListCmd(),
		newSearchCmd(),
		newExportCmd(),
		newValidateCmd(),
		newSeedCmd(),
		newVerifyCmd(),
		newStatsCmd(),
	)
	return root
}

func newResolveCmd() *cobra.Command {
	var level, name string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the id for a level and name (0 when not found)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}
			filters := filtersFor(l, name)
			fmt.Fprintln(cmd.OutOrStdout(), geoid.Resolve(l, filters))
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "level (pays, region, departement, intercommunalite, commune)")
	cmd.Flags().StringVar(&name, "name", "", "exact display name")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func newNameCmd() *cobra.Command {
	var level string
	var id int

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print the name for an id; the level is inferred when omitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var l domain.Level
			if level == "" {
				inferred, ok := domain.LevelForID(id)
				if !ok {
					return fmt.Errorf("id %d is outside every level range", id)
				}
				l = inferred
			} else {
				parsed, err := domain.ParseLevel(level)
				if err != nil {
					return err
				}
				l = parsed
			}

			if l == domain.LevelCountry && id == domain.CountryID {
				fmt.Fprintln(cmd.OutOrStdout(), domain.CountryName)
				return nil
			}

			name, ok := geoid.NameFor(l, id)
			if !ok {
				return fmt.Errorf("no %s with id %d", l, id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "level; inferred from the id range when empty")
	cmd.Flags().IntVar(&id, "id", 0, "identifier")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newListCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a level table in authored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}
			printEntries(cmd, geoid.Entries(l))
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "level to list")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var level string
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search names ignoring case and diacritics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}
			printEntries(cmd, geoid.Search(l, args[0], limit))
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "level to search")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (0 = unlimited)")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

// catalogExport - формат выгрузки каталога
type catalogExport struct {
	Regions             []domain.GeoEntry `json:"regions" yaml:"regions"`
	Departments         []domain.GeoEntry `json:"departments" yaml:"departments"`
	InterMunicipalities []domain.GeoEntry `json:"inter_municipalities" yaml:"inter_municipalities"`
	Communes            []domain.GeoEntry `json:"communes" yaml:"communes"`
}

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every table as yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			export := catalogExport{
				Regions:             geoid.Entries(domain.LevelRegion),
				Departments:         geoid.Entries(domain.LevelDepartment),
				InterMunicipalities: geoid.Entries(domain.LevelInterMunicipality),
				Communes:            geoid.Entries(domain.LevelCommune),
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(export); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				data, err := json.MarshalIndent(export, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			default:
				return fmt.Errorf("unknown format %q (expected yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that names and ids are unique and ids sit in their level range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// таблицы уже проверены в PersistentPreRunE
			total := len(geoid.All())
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d entries\n", total)
			return nil
		},
	}
}

func filtersFor(level domain.Level, name string) domain.Filters {
	var f domain.Filters
	switch level {
	case domain.LevelCountry:
		f.Country = name
	case domain.LevelRegion:
		f.Region = name
	case domain.LevelDepartment:
		f.Department = name
	case domain.LevelInterMunicipality:
		f.InterMunicipality = name
	case domain.LevelCommune:
		f.Commune = name
	}
	return f
}

func printEntries(cmd *cobra.Command, entries []domain.GeoEntry) {
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%d\t%s\n", e.ID, e.Name)
	}
}
