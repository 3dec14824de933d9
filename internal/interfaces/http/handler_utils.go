package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
)

// parseID lê o parâmetro :id da rota como inteiro positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// statusFor mapeia erros de domínio para status HTTP. Regras de negócio
// violadas (saldo insuficiente, código duplicado, exclusão bloqueada)
// são 400: pedido bem formado que o estado atual não permite atender.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrTipoInvalido),
		errors.Is(err, domain.ErrQuantidadeInvalida),
		errors.Is(err, domain.ErrProdutoNotFound),
		errors.Is(err, domain.ErrCategoriaNotFound),
		errors.Is(err, domain.ErrCodigoDuplicado),
		errors.Is(err, domain.ErrEstoqueInsuficiente),
		errors.Is(err, domain.ErrProdutoComMovimentos),
		errors.Is(err, domain.ErrCategoriaComProdutos),
		errors.Is(err, domain.ErrEmailJaCadastrado):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// errorJSON devolve o corpo {"error": "..."} com o status adequado.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Error: err.Error()})
}
