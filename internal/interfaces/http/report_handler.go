package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// RelatorioService contrato consumido pelo handler de relatórios.
type RelatorioService interface {
	EstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error)
	EstoqueBaixoPDF(ctx context.Context) ([]byte, error)
	Movimentacoes(ctx context.Context, filtro repository.MovimentacaoFilter) (*dto.RelatorioMovimentacoesResponse, error)
}

// RelatorioHandler trata as requisições HTTP para relatórios.
type RelatorioHandler struct {
	svc RelatorioService
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(svc RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{svc: svc}
}

// EstoqueBaixo godoc
// @Summary      Produtos abaixo do estoque mínimo
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/relatorios/estoque-baixo [get]
func (h *RelatorioHandler) EstoqueBaixo(c *fiber.Ctx) error {
	out, err := h.svc.EstoqueBaixo(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// EstoqueBaixoPDF godoc
// @Summary      Relatório de estoque baixo em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/relatorios/estoque-baixo/pdf [get]
func (h *RelatorioHandler) EstoqueBaixoPDF(c *fiber.Ctx) error {
	doc, err := h.svc.EstoqueBaixoPDF(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque-baixo.pdf"`)
	return c.Send(doc)
}

// Movimentacoes godoc
// @Summary      Movimentações por período com totais
// @Tags         relatorios
// @Produce      json
// @Param        produtoId   query  int     false  "Filtra por produto"
// @Param        tipo        query  string  false  "ENTRADA ou SAIDA"
// @Param        dataInicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.RelatorioMovimentacoesResponse
// @Router       /api/relatorios/movimentacoes [get]
func (h *RelatorioHandler) Movimentacoes(c *fiber.Ctx) error {
	filtro, err := movimentacaoFilterFromQuery(c)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.svc.Movimentacoes(c.UserContext(), filtro)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
