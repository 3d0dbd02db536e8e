package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gyansetu/website/internal/assets"
	"github.com/gyansetu/website/internal/progress"
	"github.com/gyansetu/website/internal/publish"
	"github.com/gyansetu/website/internal/site"
	"github.com/gyansetu/website/internal/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static HTML",
	Long: `Renders every route, every detail-page tab and a 404 page into the
export directory, copies matching assets and optionally uploads the result
to S3.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override export.output_dir")
	exportCmd.Flags().String("theme", "light", "theme the exported pages start in (light or dark)")
	exportCmd.Flags().Bool("publish", false, "upload the export to publish.bucket")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Export.OutputDir = out
	}
	doPublish, _ := cmd.Flags().GetBool("publish")
	if doPublish {
		if err := cfg.ValidatePublish(); err != nil {
			return err
		}
	}
	mode, _ := cmd.Flags().GetString("theme")

	_, routes, renderer, err := buildSite(cfg, site.WithTabLinks(site.TabPaths), site.WithLive(false))
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	gen := site.NewGenerator(renderer, routes, fs, fs, site.ExportConfig{
		OutputDir: cfg.Export.OutputDir,
		AssetsDir: cfg.Export.AssetsDir,
		Filter:    assets.Filter{Include: cfg.Export.Include, Exclude: cfg.Export.Exclude},
		Theme:     theme.ParseMode(mode),
	}, site.WithReporter(progress.NewReporter("Exporting")))

	res, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	fmt.Printf("Static site exported: %s (%d pages, %d assets)\n", cfg.Export.OutputDir, len(res.Pages), len(res.Assets))

	if !doPublish {
		return nil
	}
	pub := publish.New(publish.NewClient(cfg.Publish), cfg.Publish.Bucket, cfg.Publish.Prefix,
		publish.WithReporter(progress.NewReporter("Publishing")))
	keys, err := pub.Publish(cmd.Context(), fs, cfg.Export.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Published %d objects to s3://%s/%s\n", len(keys), cfg.Publish.Bucket, cfg.Publish.Prefix)
	return nil
}
