package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// MovimentacaoRegistrar contrato do registro transacional de movimentações.
type MovimentacaoRegistrar interface {
	Register(ctx context.Context, in dto.CreateMovimentacaoRequest) (*entity.Movimentacao, error)
}

// MovimentacaoLister contrato das consultas sobre o ledger.
type MovimentacaoLister interface {
	List(ctx context.Context, filtro repository.MovimentacaoFilter) ([]dto.MovimentacaoResponse, error)
}

// MovimentacaoHandler trata as requisições HTTP para movimentações.
type MovimentacaoHandler struct {
	registrar MovimentacaoRegistrar
	lister    MovimentacaoLister
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(registrar MovimentacaoRegistrar, lister MovimentacaoLister) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrar: registrar, lister: lister}
}

// movimentacaoFilterFromQuery monta o filtro a partir da query string.
// Datas aceitam YYYY-MM-DD ou RFC 3339.
func movimentacaoFilterFromQuery(c *fiber.Ctx) (repository.MovimentacaoFilter, error) {
	var filtro repository.MovimentacaoFilter
	if raw := c.Query("produtoId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filtro, domain.ErrInvalidID
		}
		filtro.ProdutoID = &id
	}
	if tipo := c.Query("tipo"); tipo != "" {
		if !entity.TipoValido(tipo) {
			return filtro, domain.ErrTipoInvalido
		}
		filtro.Tipo = &tipo
	}
	if raw := c.Query("dataInicio"); raw != "" {
		t, err := parseData(raw)
		if err != nil {
			return filtro, domain.ErrInvalidInput
		}
		filtro.DataInicio = &t
	}
	if raw := c.Query("dataFim"); raw != "" {
		t, err := parseData(raw)
		if err != nil {
			return filtro, domain.ErrInvalidInput
		}
		filtro.DataFim = &t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filtro, domain.ErrInvalidInput
		}
		filtro.Limit = n
	}
	return filtro, nil
}

func parseData(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// List godoc
// @Summary      Listar movimentações (mais recentes primeiro)
// @Tags         movimentacoes
// @Produce      json
// @Param        produtoId   query  int     false  "Filtra por produto"
// @Param        tipo        query  string  false  "ENTRADA ou SAIDA"
// @Param        dataInicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Data final (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Limite de resultados"
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	filtro, err := movimentacaoFilterFromQuery(c)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.lister.List(c.UserContext(), filtro)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimentação de estoque
// @Description  ENTRADA soma ao saldo; SAIDA subtrai e é rejeitada quando
// @Description  a quantidade excede o saldo atual. Lançamento e saldo são
// @Description  gravados na mesma transação.
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimentacaoRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	mov, err := h.registrar.Register(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovimentacaoResponse(mov))
}
