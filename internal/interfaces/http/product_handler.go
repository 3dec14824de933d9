package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// ProdutoService contrato consumido pelo handler de produtos.
type ProdutoService interface {
	Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProdutoResponse, error)
	List(ctx context.Context, filtro repository.ProdutoFilter) ([]dto.ProdutoResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error)
	Delete(ctx context.Context, id int64) error
}

// ProdutoHandler trata as requisições HTTP para produtos.
type ProdutoHandler struct {
	svc ProdutoService
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(svc ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{svc: svc}
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Param        categoriaId   query  int     false  "Filtra por categoria"
// @Param        estoqueBaixo  query  bool    false  "Apenas produtos abaixo do mínimo"
// @Param        busca         query  string  false  "Busca por nome ou código (sem acentos)"
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	var filtro repository.ProdutoFilter
	if raw := c.Query("categoriaId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return errorJSON(c, domain.ErrInvalidID)
		}
		filtro.CategoriaID = &id
	}
	filtro.EstoqueBaixo = c.Query("estoqueBaixo") == "true"
	filtro.Busca = c.Query("busca")

	out, err := h.svc.List(c.UserContext(), filtro)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
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
// @Summary      Obter produto por ID (com histórico recente)
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: domain.ErrProdutoNotFound.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto (quantidade não muda por aqui)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: domain.ErrProdutoNotFound.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir produto (bloqueado se houver movimentações)
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
