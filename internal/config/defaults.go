package config

import "github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"

// defaultCatalog ships compiled in so the service works without a config
// file. configs/templates.yaml carries the same entries.
func defaultCatalog() *TemplateCatalog {
	return &TemplateCatalog{
		Templates: []WireframeTemplate{
			{
				ID:          "landing-hero",
				Name:        "Landing Page with Hero",
				Description: "Marketing landing page with hero section, features, and CTA",
				LayoutType:  models.LayoutLandingPage,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentHero, models.ComponentContent, models.ComponentButton, models.ComponentFooter},
				Width:       1200,
				Height:      1200,
				PreviewURL:  "/templates/landing-hero.png",
				Tags:        []string{"marketing", "hero", "cta"},
			},
			{
				ID:          "dashboard-analytics",
				Name:        "Analytics Dashboard",
				Description: "Data dashboard with charts, metrics, and sidebar navigation",
				LayoutType:  models.LayoutDashboard,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentSidebar, models.ComponentChart, models.ComponentCard},
				Width:       1440,
				Height:      900,
				PreviewURL:  "/templates/dashboard-analytics.png",
				Tags:        []string{"dashboard", "analytics", "charts"},
			},
			{
				ID:          "ecommerce-grid",
				Name:        "Product Grid",
				Description: "E-commerce product listing with grid layout and filters",
				LayoutType:  models.LayoutEcommerce,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentCard, models.ComponentFooter},
				Width:       1200,
				Height:      1000,
				PreviewURL:  "/templates/ecommerce-grid.png",
				Tags:        []string{"ecommerce", "products", "grid"},
			},
			{
				ID:          "mobile-app-tabs",
				Name:        "Mobile App with Tabs",
				Description: "Mobile app interface with bottom tab navigation",
				LayoutType:  models.LayoutMobileApp,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentContent, models.ComponentNavigation},
				Width:       375,
				Height:      812,
				PreviewURL:  "/templates/mobile-app-tabs.png",
				Tags:        []string{"mobile", "app", "tabs"},
			},
			{
				ID:          "signup-form",
				Name:        "Signup Form",
				Description: "Centered registration form with labeled fields and a submit button",
				LayoutType:  models.LayoutForm,
				Components:  []models.ComponentType{models.ComponentForm, models.ComponentButton},
				Width:       600,
				Height:      800,
				PreviewURL:  "/templates/signup-form.png",
				Tags:        []string{"form", "signup", "auth"},
			},
			{
				ID:          "blog-article",
				Name:        "Blog Article",
				Description: "Article page with content column and sidebar widgets",
				LayoutType:  models.LayoutBlog,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentContent, models.ComponentSidebar, models.ComponentFooter},
				Width:       800,
				Height:      1000,
				PreviewURL:  "/templates/blog-article.png",
				Tags:        []string{"blog", "article", "content"},
			},
			{
				ID:          "corporate-home",
				Name:        "Corporate Homepage",
				Description: "Standard desktop website with header navigation and footer",
				LayoutType:  models.LayoutWebDesktop,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent, models.ComponentFooter},
				Width:       1200,
				Height:      800,
				PreviewURL:  "/templates/corporate-home.png",
				Tags:        []string{"web", "corporate", "homepage"},
			},
			{
				ID:          "responsive-mobile-web",
				Name:        "Responsive Mobile Web",
				Description: "Website layout rendered at phone width",
				LayoutType:  models.LayoutWebMobile,
				Components:  []models.ComponentType{models.ComponentHeader, models.ComponentContent, models.ComponentFooter},
				Width:       375,
				Height:      667,
				PreviewURL:  "/templates/responsive-mobile-web.png",
				Tags:        []string{"web", "mobile", "responsive"},
			},
		},
	}
}
