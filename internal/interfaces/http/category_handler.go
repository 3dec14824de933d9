package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
)

// CategoriaService contrato consumido pelo handler de categorias.
type CategoriaService interface {
	Create(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error)
	List(ctx context.Context) ([]dto.CategoriaResponse, error)
	Update(ctx context.Context, id int64, in dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Delete(ctx context.Context, id int64) error
}

// CategoriaHandler trata as requisições HTTP para categorias.
type CategoriaHandler struct {
	svc CategoriaService
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(svc CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// List godoc
// @Summary      Listar categorias
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "Dados da categoria"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter categoria por ID (com produtos)
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID da categoria"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: domain.ErrCategoriaNotFound.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da categoria"
// @Param        body  body  dto.CategoriaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.CategoriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: domain.ErrCategoriaNotFound.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir categoria (bloqueado se houver produtos)
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID da categoria"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
