package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nexus-estoque/api/internal/application/auth"
	"github.com/nexus-estoque/api/internal/application/estoque"
	"github.com/nexus-estoque/api/internal/application/relatorio"
	"github.com/nexus-estoque/api/internal/application/usecase"
	"github.com/nexus-estoque/api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CategoriaUC *usecase.CategoriaUseCase
	ProdutoUC   *usecase.ProdutoUseCase
	ClienteUC   *usecase.ClienteUseCase
	EstoqueUC   *estoque.UseCase
	RelatorioUC *relatorio.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	gerente := RequireNivel(entity.PapelGerente)

	protected.Get("/me", authHandler.Me)

	// Categorias (mutações exigem gerente+)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", gerente, categoriaHandler.Create)
	categorias.Put("/:id", gerente, categoriaHandler.Update)
	categorias.Delete("/:id", gerente, categoriaHandler.Delete)

	// Produtos (mutações exigem gerente+)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", gerente, produtoHandler.Create)
	produtos.Put("/:id", gerente, produtoHandler.Update)
	produtos.Delete("/:id", gerente, produtoHandler.Delete)

	// Clientes (mutações exigem gerente+)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", gerente, clienteHandler.Create)
	clientes.Put("/:id", gerente, clienteHandler.Update)
	clientes.Delete("/:id", gerente, clienteHandler.Delete)

	// Transações: a regra de papel do POST fica no caso de uso (entrada exige
	// gerente+, saída não); o estorno exige gerente+.
	transacoes := protected.Group("/transacoes")
	transacaoHandler := NewTransacaoHandler(deps.EstoqueUC)
	transacoes.Get("/", transacaoHandler.List)
	transacoes.Post("/", transacaoHandler.Create)
	transacoes.Delete("/:id", gerente, transacaoHandler.Delete)

	// Relatórios (PDF)
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/estoque", relatorioHandler.Estoque)
}
