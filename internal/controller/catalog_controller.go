package controller

import (
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/serverutils"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ShowCourse(ctx *fiber.Ctx) error
	ShowPrerequisites(ctx *fiber.Ctx) error
	SearchInstructor(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/courses/:code", c.ShowCourse)
	r.Get("/courses/:code/prerequisites", c.ShowPrerequisites)
	r.Get("/instructors", c.SearchInstructor)
}

func (c *catalogController) ShowCourse(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ShowCourse(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Course detail", res))
}

func (c *catalogController) ShowPrerequisites(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ShowPrerequisites(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Course prerequisites", res))
}

func (c *catalogController) SearchInstructor(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing query parameter q")
	}

	res, err := c.catalogService.SearchInstructor(ctx.Context(), query)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Instructor not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Instructor detail", res))
}
