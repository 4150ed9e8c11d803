package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

// PageController renders the informational pages
type PageController struct {
	catalog func() *catalog.Catalog
}

func NewPageController(cat func() *catalog.Catalog) *PageController {
	return &PageController{catalog: cat}
}

type businessTypeCard struct {
	Key         string
	Name        string
	Description string
	From        string
	Timeline    string
}

func (pc *PageController) HandleStart(c *fiber.Ctx) error {
	cat := pc.catalog()
	cards := make([]businessTypeCard, 0, len(cat.BusinessTypes))
	for _, bt := range cat.BusinessTypes {
		cards = append(cards, businessTypeCard{
			Key:         bt.Key,
			Name:        bt.Name,
			Description: bt.Description,
			From:        cat.Format(bt.BasePrice),
			Timeline:    bt.Timeline,
		})
	}
	return render(c, "index", "Websites that work", fiber.Map{
		"BusinessTypes": cards,
	})
}

// HandleFeatures lists every feature with its tier prices.
func (pc *PageController) HandleFeatures(c *fiber.Ctx) error {
	cat := pc.catalog()
	return render(c, "features", "Features", fiber.Map{
		"Groups": cat.Groups,
		"Format": cat.Format,
	})
}
