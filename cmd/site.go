package cmd

import (
	"fmt"

	"github.com/nikogura/portfolio/pkg/config"
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/lint"
	"github.com/nikogura/portfolio/pkg/page"
	"github.com/nikogura/portfolio/pkg/renderer"
	"github.com/pkg/errors"
)

// site is everything a command needs to render the portfolio.
type site struct {
	cfg      config.Config
	model    content.Model
	composer *page.Composer
	meta     renderer.Meta
}

// loadSite loads config and content and builds the page composer.
func loadSite() (s site, err error) {
	s.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return s, err
	}

	s, err = newSite(s.cfg)
	return s, err
}

func newSite(cfg config.Config) (s site, err error) {
	s.cfg = cfg

	if cfg.ContentLocation == "" {
		if getVerbose() {
			fmt.Println("No content file configured, using built-in sample content")
		}
		s.model = content.Default()
	} else {
		if getVerbose() {
			fmt.Printf("Loading content from: %s\n", cfg.ContentLocation)
		}
		s.model, err = content.Load(cfg.ContentLocation)
		if err != nil {
			err = errors.Wrap(err, "failed to load content")
			return s, err
		}
	}

	if getVerbose() {
		fmt.Printf("Loaded %d projects, %d skill categories, %d extra sections\n",
			len(s.model.Projects), len(s.model.Skills), len(s.model.Extras))
	}

	s.composer = page.New(s.model, page.Options{ThemeToggle: cfg.Site.ThemeToggle})
	s.meta = buildMeta(cfg.Site, s.model)

	return s, err
}

func buildMeta(siteCfg config.SiteConfig, model content.Model) (meta renderer.Meta) {
	title := siteCfg.Title
	if title == "" {
		title = model.Profile.Name
		if model.Profile.Title != "" {
			title += " | " + model.Profile.Title
		}
	}

	description := siteCfg.Description
	if description == "" {
		description = model.Profile.Bio
	}

	meta = renderer.Meta{
		Lang:        model.Tag().String(),
		Title:       title,
		Description: description,
		Stylesheets: siteCfg.Stylesheets,
		Scripts:     siteCfg.Scripts,
	}
	return meta
}

// lintSite runs the content linter over the composed page.
func lintSite(s site) (report lint.Report) {
	report = lint.Check(lint.Input{
		Model:      s.model,
		SectionIDs: s.composer.SectionIDs(),
		NavLinks:   s.composer.NavLinks(),
	})
	return report
}

func printViolations(report lint.Report) {
	for _, v := range report.Violations {
		fmt.Printf("Warning: [%s] %s at %s: %s\n", v.Severity, v.Rule, v.Location, v.Detail)
	}
}
