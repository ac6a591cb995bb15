package handlers

import (
	"errors"
	"fmt"

	"catalog/internal/dto"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes. Reads are public, writes pass
// through auth first.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", auth, h.HandleCreateProduct)
	productRoutes.Put("/:id", auth, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", auth, h.HandleDeleteProduct)
}

// HandleGetProducts lists every product.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAll())
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(id)
	if err != nil {
		return productError(err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product and answers with its new ID.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	productDto, err := h.parseProduct(c)
	if err != nil {
		return err
	}

	id := h.service.Create(productDto)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// HandleUpdateProduct replaces name, price and description of a product and
// returns the stored result.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	productDto, err := h.parseProduct(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(id, productDto); err != nil {
		return productError(err)
	}

	product, err := h.service.Get(id)
	if err != nil {
		return productError(err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product. Deleting an unknown product succeeds.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	h.service.Delete(id)
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", id),
	})
}

func (h *ProductHandler) parseProduct(c *fiber.Ctx) (dto.Product, error) {
	var productDto dto.Product
	if err := c.BodyParser(&productDto); err != nil {
		return productDto, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validateStruct(h.validate, productDto); err != nil {
		return productDto, err
	}
	return productDto, nil
}

func productID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid product id %q", c.Params("id")))
	}
	return id, nil
}

func productError(err error) error {
	if errors.Is(err, services.ErrProductNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
