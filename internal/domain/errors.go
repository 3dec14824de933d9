package domain

import "errors"

// Erros de domínio (sem dependências externas). As mensagens seguem o
// vocabulário da API: o handler HTTP as devolve como {"error": "..."}.
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("campos obrigatórios não preenchidos")
	ErrInvalidID            = errors.New("ID inválido")
	ErrTipoInvalido         = errors.New("tipo de movimentação inválido")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser maior que zero")
	ErrProdutoNotFound      = errors.New("produto não encontrado")
	ErrCategoriaNotFound    = errors.New("categoria não encontrada")
	ErrCodigoDuplicado      = errors.New("código de produto já cadastrado")
	ErrEstoqueInsuficiente  = errors.New("quantidade insuficiente em estoque")
	ErrProdutoComMovimentos = errors.New("não é possível excluir produto com movimentações associadas")
	ErrCategoriaComProdutos = errors.New("não é possível excluir categoria com produtos associados")
	ErrEmailJaCadastrado    = errors.New("e-mail já cadastrado")
	ErrUnauthorized         = errors.New("não autorizado")
)
