package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências para o router. Os campos são os contratos dos
// handlers, então os testes podem injetar dublês.
type RouterDeps struct {
	CategoriaUC      CategoriaService
	ProdutoUC        ProdutoService
	RegisterMovement MovimentacaoRegistrar
	MovimentacaoUC   MovimentacaoLister
	RelatorioUC      RelatorioService
	DashboardUC      DashboardService
	AuthUC           AuthService

	// JWTSecret vazio desliga a proteção das rotas (modo aberto).
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
	}

	protected := api.Group("/")
	if deps.JWTSecret != "" {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Movimentações
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.RegisterMovement, deps.MovimentacaoUC)
	movimentacoes.Get("/", movimentacaoHandler.List)
	movimentacoes.Post("/", movimentacaoHandler.Create)

	// Relatórios
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/estoque-baixo", relatorioHandler.EstoqueBaixo)
	relatorios.Get("/estoque-baixo/pdf", relatorioHandler.EstoqueBaixoPDF)
	relatorios.Get("/movimentacoes", relatorioHandler.Movimentacoes)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetResumo)
}
